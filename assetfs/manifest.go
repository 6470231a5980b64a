package assetfs

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/sagarc03/romserve"
)

// DefaultManifest is the manifest file name looked up at the fs root.
const DefaultManifest = "assets.yaml"

// Manifest holds per-asset overrides and exclusion patterns.
type Manifest struct {
	Ignore []string            `yaml:"ignore"`
	Assets map[string]Override `yaml:"assets"`
}

// Override changes how one asset is loaded.
type Override struct {
	ContentType string `yaml:"content_type"`
	Minify      *bool  `yaml:"minify"`
	Gzip        *bool  `yaml:"gzip"`
}

// ReadManifest reads and checks the manifest. A missing file yields an empty
// manifest.
func ReadManifest(fsys fs.FS, name string) (Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", name, err)
	}

	for _, pattern := range m.Ignore {
		if _, err := path.Match(pattern, ""); err != nil {
			return Manifest{}, fmt.Errorf("parse manifest %s: ignore pattern %q: %w", name, pattern, err)
		}
	}

	for p := range m.Assets {
		if !romserve.IsValidAssetPath(p) {
			return Manifest{}, fmt.Errorf("parse manifest %s: asset %q: %w", name, p, romserve.ErrInvalidInput)
		}
	}

	return m, nil
}

// Ignored reports whether an asset path matches one of the ignore patterns,
// either as a whole path or by its base name.
func (m Manifest) Ignored(assetPath string) bool {
	base := path.Base(assetPath)
	for _, pattern := range m.Ignore {
		if ok, _ := path.Match(pattern, assetPath); ok {
			return true
		}
		if ok, _ := path.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
