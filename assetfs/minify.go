package assetfs

import (
	"fmt"
	"path"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

var minifiable = map[string]string{
	".htm":  "text/html",
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
}

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	// html.Minify hands inline scripts over under either name.
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("text/javascript", js.Minify)
	return m
}

// IsMinifiable reports whether the file extension has a minifier.
func IsMinifiable(name string) bool {
	_, ok := minifiable[strings.ToLower(path.Ext(name))]
	return ok
}

// Minify strips whitespace and comments from HTML, CSS and JavaScript.
// Content of other types is returned unchanged.
func Minify(name string, content []byte) ([]byte, error) {
	mediatype, ok := minifiable[strings.ToLower(path.Ext(name))]
	if !ok {
		return content, nil
	}

	out, err := minifier.Bytes(mediatype, content)
	if err != nil {
		return nil, fmt.Errorf("minify %s: %w", name, err)
	}
	return out, nil
}
