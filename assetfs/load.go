package assetfs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/sagarc03/romserve"
)

const gzipSuffix = ".gz"

// Options controls how Load walks the fs and encodes assets.
type Options struct {
	// Recursive includes files in subdirectories.
	Recursive bool
	// Minify strips HTML, CSS and JavaScript before the gzip decision.
	Minify bool
	// Compress gzips compressible text files when that makes them smaller.
	Compress bool
	// Manifest is the manifest file name at the fs root. Empty means
	// DefaultManifest.
	Manifest string
}

// Load walks fsys in lexical order and returns one record per file. Files
// whose names start with "." are skipped; directories are not, so
// .well-known/ is served. Files whose path cannot be a table key are logged
// and skipped. The returned table has no sentinel and has passed
// Table.Validate.
func Load(fsys fs.FS, opts Options) (romserve.Table, error) {
	manifestName := opts.Manifest
	if manifestName == "" {
		manifestName = DefaultManifest
	}

	manifest, err := ReadManifest(fsys, manifestName)
	if err != nil {
		return nil, err
	}

	names, err := collect(fsys, opts.Recursive)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[name] = true
	}

	var table romserve.Table
	for _, name := range names {
		if name == manifestName {
			continue
		}

		// The precompressed sibling is loaded in place of this file.
		if present[name+gzipSuffix] {
			slog.Debug("skipping file with precompressed sibling", "file", name)
			continue
		}

		assetPath := "/" + strings.TrimSuffix(name, gzipSuffix)
		if manifest.Ignored(assetPath) {
			slog.Debug("skipping ignored file", "file", name)
			continue
		}

		if !romserve.IsValidAssetPath(assetPath) {
			slog.Warn("skipping file that cannot be served", "file", name)
			continue
		}

		a, err := loadAsset(fsys, name, assetPath, manifest.Assets[assetPath], opts)
		if err != nil {
			return nil, err
		}

		slog.Debug("loaded asset",
			"path", a.Path,
			"length", a.Length,
			"content_type", a.ContentType,
			"compressed", a.Compressed,
		)
		table = append(table, a)
	}

	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}

	return table, nil
}

// collect returns the slash-separated names of all regular files to load.
func collect(fsys fs.FS, recursive bool) ([]string, error) {
	var names []string

	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if name == "." {
			return nil
		}

		if d.IsDir() {
			if !recursive {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk assets: %w", err)
	}

	return names, nil
}

func loadAsset(fsys fs.FS, name, assetPath string, override Override, opts Options) (romserve.Asset, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return romserve.Asset{}, fmt.Errorf("read %s: %w", name, err)
	}

	a := romserve.Asset{Path: assetPath}

	if strings.HasSuffix(name, gzipSuffix) {
		a.Compressed = true
		a.ContentType = ContentType(assetPath, nil)
	} else {
		a.ContentType = ContentType(assetPath, content)

		minifyIt := opts.Minify && IsMinifiable(assetPath)
		if override.Minify != nil {
			minifyIt = *override.Minify
		}
		if minifyIt {
			minified, err := Minify(assetPath, content)
			switch {
			case err != nil:
				slog.Warn("serving file unminified", "file", name, "err", err)
			case len(minified) < len(content):
				content = minified
			}
		}

		gzipIt := opts.Compress && IsCompressible(assetPath)
		if override.Gzip != nil {
			gzipIt = *override.Gzip
		}
		if gzipIt {
			compressed, err := Gzip(content)
			if err != nil {
				return romserve.Asset{}, fmt.Errorf("compress %s: %w", name, err)
			}
			// A forced override keeps gzip even when it does not shrink.
			if override.Gzip != nil || len(compressed) < len(content) {
				content = compressed
				a.Compressed = true
			}
		}
	}

	if override.ContentType != "" {
		a.ContentType = override.ContentType
	}

	a.Content = content
	a.Length = len(content)
	return a, nil
}
