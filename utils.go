package romserve

import (
	"strings"
	"unicode/utf8"
)

// IsValidAssetPath validates that a path string can be used as a table key.
// It checks that the path:
//   - is absolute (starts with "/") and is not "/" itself
//   - does not end with "/"
//   - does not contain "//" (empty segments)
//   - does not contain "." or ".." segments
//   - does not contain a query or fragment marker: ? #
//   - is valid UTF-8
//   - does not contain null bytes, control characters (< 0x20), or DEL (0x7f)
//
// Spaces are allowed: the host decodes "%20" before the path reaches the
// router.
func IsValidAssetPath(p string) bool {
	if p == "" || p == "/" {
		return false
	}

	if p[0] != '/' {
		return false
	}

	if strings.HasSuffix(p, "/") {
		return false
	}

	if strings.Contains(p, "//") {
		return false
	}

	if strings.ContainsAny(p, "?#") {
		return false
	}

	if !utf8.ValidString(p) {
		return false
	}

	for _, segment := range strings.Split(p[1:], "/") {
		if segment == "." || segment == ".." {
			return false
		}
	}

	for _, r := range p {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}

	return true
}

// IsValidPrefix validates an ignored path prefix: non-empty and absolute.
func IsValidPrefix(p string) bool {
	return p != "" && p[0] == '/'
}
