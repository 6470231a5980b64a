package http_test

import (
	"github.com/sagarc03/romserve"
)

func asset(path, content, contentType string, compressed bool) romserve.Asset {
	return romserve.Asset{
		Path:        path,
		Content:     []byte(content),
		Length:      len(content),
		ContentType: contentType,
		Compressed:  compressed,
	}
}

func testRouter(ignored ...string) *romserve.Router {
	table := romserve.Table{
		asset("/index.htm", "<h1>home</h1>", "text/html", false),
		asset("/a.txt", "hello", "text/plain", false),
		asset("/js/app.js", "\x1f\x8bcompressed", "text/javascript", true),
		asset("/api/data", "x", "application/json", false),
	}
	return romserve.NewRouter(table, ignored, romserve.RouterConfig{})
}
