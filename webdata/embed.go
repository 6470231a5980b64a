// Package webdata holds the demo asset set compiled into the romserve
// binary. It is served when no asset directory is configured.
package webdata

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// FS returns the demo assets rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is always embedded, so Sub cannot fail.
		panic(err)
	}
	return sub
}
