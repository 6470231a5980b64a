package romserve

import "net/http"

// DefaultDocument is served in place of the root path "/".
const DefaultDocument = "/index.htm"

// EncodingGzip is the Content-Encoding value emitted for compressed assets.
const EncodingGzip = "gzip"

const notFoundPrefix = "Not found.\n\nURI: "

// Asset is one embedded file. Content is referenced, never copied.
type Asset struct {
	Path        string `json:"path"`
	Content     []byte `json:"-"`
	Length      int    `json:"length"`
	ContentType string `json:"content_type"`
	Compressed  bool   `json:"compressed"`
}

// IsSentinel reports whether the record marks the end of a table.
func (a Asset) IsSentinel() bool {
	return a.Path == ""
}

// body returns the content sized to Length. A Length larger than the
// content truncates to the content; a negative Length yields no bytes.
func (a Asset) body() []byte {
	n := a.Length
	if n > len(a.Content) {
		n = len(a.Content)
	}
	if n < 0 {
		n = 0
	}
	return a.Content[:n:n]
}

// Table is an ordered list of assets. Scanning stops at the end of the slice
// or at the first sentinel record, whichever comes first.
type Table []Asset

// Response is the single response produced for an accepted request.
type Response struct {
	Status          int
	ContentType     string
	ContentEncoding string
	Body            []byte
}

// Header returns the response headers the router emits.
func (r Response) Header() http.Header {
	h := http.Header{}
	h.Set("Content-Type", r.ContentType)
	if r.ContentEncoding != "" {
		h.Set("Content-Encoding", r.ContentEncoding)
	}
	return h
}

// RouterConfig holds optional router settings.
type RouterConfig struct {
	// DefaultDocument replaces "/" before lookup. Empty means DefaultDocument.
	DefaultDocument string
}
