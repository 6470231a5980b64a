package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/sagarc03/romserve"
	"github.com/sagarc03/romserve/assetfs"
	"github.com/sagarc03/romserve/config"
	"github.com/sagarc03/romserve/webdata"
)

// loadTable builds the asset table from the configured directory, or from the
// embedded demo set when no directory is configured.
func loadTable(cfg *config.Config) (romserve.Table, error) {
	var fsys fs.FS
	if cfg.Assets.Dir == "" {
		slog.Debug("using embedded demo assets")
		fsys = webdata.FS()
	} else {
		root, err := os.OpenRoot(cfg.Assets.Dir)
		if err != nil {
			return nil, fmt.Errorf("open assets dir: %w", err)
		}
		defer func() { _ = root.Close() }()
		fsys = root.FS()
	}

	table, err := assetfs.Load(fsys, assetfs.Options{
		Recursive: cfg.Assets.Recursive,
		Minify:    cfg.Assets.Minify,
		Compress:  cfg.Assets.Compress,
		Manifest:  cfg.Assets.Manifest,
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// ignoredPrefixes returns the configured prefixes plus the API prefix, so the
// asset router never shadows the API.
func ignoredPrefixes(cfg *config.Config) []string {
	prefixes := slices.Clone(cfg.Router.IgnoredPrefixes)
	if cfg.API.Prefix != "" && !slices.Contains(prefixes, cfg.API.Prefix) {
		prefixes = append(prefixes, cfg.API.Prefix)
	}
	return prefixes
}

// newRouter loads the table and builds the router the commands share.
func newRouter(cfg *config.Config) (*romserve.Router, error) {
	table, err := loadTable(cfg)
	if err != nil {
		return nil, err
	}
	return romserve.NewRouter(table, ignoredPrefixes(cfg), cfg.Router.RomserveRouterConfig()), nil
}
