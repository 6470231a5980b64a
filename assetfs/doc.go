// Package assetfs builds a romserve.Table from an fs.FS.
//
// It is the runtime counterpart of a firmware asset-embedding step: every
// regular file becomes one table record with a path, content, length, content
// type and gzip flag. Pair it with //go:embed to compile the assets into the
// binary, or with os.Root.FS to serve a directory.
//
// # Minification
//
// With Options.Minify set, .htm, .html, .css and .js files are minified
// before the gzip decision. A file that fails to minify is served as read.
// A manifest override "minify: true|false" forces the decision per asset.
// Precompressed files are never minified.
//
// # Gzip-or-store policy
//
// The policy is deterministic for a given input:
//
//  1. A file named "x.gz" is served as "x", marked compressed, unchanged.
//     When both "x" and "x.gz" exist, the precompressed file wins.
//  2. A manifest override "gzip: true|false" forces the decision.
//  3. With Options.Compress set, compressible text types (.htm, .html, .js,
//     .css, .json, .svg, .txt, .xml) are gzipped at best compression, and the
//     gzip form is kept only when it is smaller.
//  4. Everything else is stored as-is.
//
// # Manifest
//
// An optional YAML manifest at the fs root (assets.yaml by default) can
// override content types, force the gzip decision and exclude files:
//
//	ignore:
//	  - "*.map"
//	  - "/drafts/*"
//	assets:
//	  /index.htm:
//	    content_type: text/html
//	    minify: false
//	    gzip: true
//	  /firmware.bin:
//	    gzip: false
//
// The manifest itself is never part of the table.
package assetfs
