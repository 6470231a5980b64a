package assetfs

import (
	"bytes"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
)

// DefaultContentType is used when neither the extension nor the content
// identifies the file.
const DefaultContentType = "application/octet-stream"

var compressible = map[string]bool{
	".htm":  true,
	".html": true,
	".js":   true,
	".css":  true,
	".json": true,
	".svg":  true,
	".txt":  true,
	".xml":  true,
}

// IsCompressible reports whether the file extension is in the set gzipped
// under Options.Compress.
func IsCompressible(name string) bool {
	return compressible[strings.ToLower(path.Ext(name))]
}

// ContentType picks the MIME type from the extension, then by sniffing the
// content. content may be nil to skip sniffing.
func ContentType(name string, content []byte) string {
	if ext := path.Ext(name); ext != "" {
		if ct := mime.TypeByExtension(strings.ToLower(ext)); ct != "" {
			return ct
		}
	}

	if len(content) > 0 {
		if detected := mimetype.Detect(content); detected != nil {
			return detected.String()
		}
	}

	return DefaultContentType
}

// Gzip compresses content at best compression. The output carries no name or
// timestamp, so equal input always gives equal output.
func Gzip(content []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create gzip writer: %w", err)
	}

	if _, err := zw.Write(content); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("gzip content: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}
