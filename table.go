package romserve

import "fmt"

// Entries returns the records before the first sentinel.
func (t Table) Entries() Table {
	for i, asset := range t {
		if asset.IsSentinel() {
			return t[:i]
		}
	}
	return t
}

// Len returns the number of records before the first sentinel.
func (t Table) Len() int {
	return len(t.Entries())
}

// Validate checks the invariants the router relies on but never enforces:
// every path is a valid absolute asset path, "/" is not a key, paths are
// unique, Length equals the content size, and every record has a content
// type. Records after the first sentinel are ignored.
func (t Table) Validate() error {
	seen := make(map[string]int, len(t))

	for i, asset := range t.Entries() {
		if !IsValidAssetPath(asset.Path) {
			return fmt.Errorf("validate table: record %d: invalid path %q: %w", i, asset.Path, ErrInvalidTable)
		}

		if prev, ok := seen[asset.Path]; ok {
			return fmt.Errorf("validate table: record %d: duplicate path %q (first at %d): %w", i, asset.Path, prev, ErrInvalidTable)
		}
		seen[asset.Path] = i

		if asset.Length != len(asset.Content) {
			return fmt.Errorf("validate table: record %d: %s: length %d does not match content size %d: %w",
				i, asset.Path, asset.Length, len(asset.Content), ErrInvalidTable)
		}

		if asset.ContentType == "" {
			return fmt.Errorf("validate table: record %d: %s: empty content type: %w", i, asset.Path, ErrInvalidTable)
		}
	}

	return nil
}
