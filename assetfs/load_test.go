package assetfs_test

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarc03/romserve"
	"github.com/sagarc03/romserve/assetfs"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func paths(table romserve.Table) []string {
	out := make([]string, 0, len(table))
	for _, a := range table {
		out = append(out, a.Path)
	}
	return out
}

func gunzip(t *testing.T, data []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestLoad_Recursive(t *testing.T) {
	fsys := fstest.MapFS{
		"index.htm":         file("<html></html>"),
		"js/myscript.js":    file("console.log(1)"),
		"css/site/main.css": file("body{}"),
		".hidden":           file("secret"),
		"img/.DS_Store":     file("x"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"/css/site/main.css", "/index.htm", "/js/myscript.js"}, paths(table))
	for _, a := range table {
		assert.False(t, a.Compressed, a.Path)
		assert.Equal(t, len(a.Content), a.Length, a.Path)
	}
}

func TestLoad_NonRecursive(t *testing.T) {
	fsys := fstest.MapFS{
		"index.htm":      file("<html></html>"),
		"js/myscript.js": file("console.log(1)"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/index.htm"}, paths(table))
}

func TestLoad_ContentTypes(t *testing.T) {
	fsys := fstest.MapFS{
		"index.htm":  file("<html></html>"),
		"style.css":  file("body{}"),
		"noext":      file("%PDF-1.4\n"),
		"blob.zzzq":  {Data: []byte{0x00, 0x01, 0x02, 0x03}},
		"image.png":  {Data: []byte("\x89PNG\r\n\x1a\n")},
		"readme.txt": file("hello"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{})
	require.NoError(t, err)

	types := map[string]string{}
	for _, a := range table {
		types[a.Path] = a.ContentType
	}

	assert.True(t, strings.HasPrefix(types["/index.htm"], "text/html"), types["/index.htm"])
	assert.True(t, strings.HasPrefix(types["/style.css"], "text/css"), types["/style.css"])
	assert.Equal(t, "image/png", types["/image.png"])
	assert.Equal(t, "application/pdf", types["/noext"])
	assert.Equal(t, "application/octet-stream", types["/blob.zzzq"])
	assert.True(t, strings.HasPrefix(types["/readme.txt"], "text/plain"), types["/readme.txt"])
}

func TestLoad_Compress(t *testing.T) {
	big := strings.Repeat("<p>compress me</p>", 100)
	fsys := fstest.MapFS{
		"index.htm": file(big),
		"tiny.js":   file("a"),
		"logo.png":  file(strings.Repeat("x", 2000)),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Compress: true})
	require.NoError(t, err)
	router := romserve.NewRouter(table, nil, romserve.RouterConfig{})

	index, ok := router.Lookup("/")
	require.True(t, ok)
	assert.True(t, index.Compressed)
	assert.Less(t, index.Length, len(big))
	assert.Equal(t, big, gunzip(t, index.Content))
	assert.True(t, strings.HasPrefix(index.ContentType, "text/html"))

	// gzip would grow a one-byte file, so it is stored.
	tiny, ok := router.Lookup("/tiny.js")
	require.True(t, ok)
	assert.False(t, tiny.Compressed)
	assert.Equal(t, "a", string(tiny.Content))

	// png is not in the compressible set.
	logo, ok := router.Lookup("/logo.png")
	require.True(t, ok)
	assert.False(t, logo.Compressed)
}

func TestLoad_CompressIsDeterministic(t *testing.T) {
	fsys := fstest.MapFS{"index.htm": file(strings.Repeat("abc", 500))}

	first, err := assetfs.Load(fsys, assetfs.Options{Compress: true})
	require.NoError(t, err)
	second, err := assetfs.Load(fsys, assetfs.Options{Compress: true})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoad_Precompressed(t *testing.T) {
	gz, err := assetfs.Gzip([]byte("console.log('gz')"))
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"app.js":        file("console.log('plain')"),
		"app.js.gz":     {Data: gz},
		"vendor.css.gz": {Data: gz},
	}

	table, err := assetfs.Load(fsys, assetfs.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/app.js", "/vendor.css"}, paths(table))
	for _, a := range table {
		assert.True(t, a.Compressed, a.Path)
		assert.Equal(t, gz, a.Content, a.Path)
	}
	assert.True(t, strings.HasPrefix(table[1].ContentType, "text/css"))
}

func TestLoad_Manifest(t *testing.T) {
	manifest := `
ignore:
  - "*.map"
  - "/drafts/*"
assets:
  /index.htm:
    content_type: text/html
    gzip: true
  /notes.txt:
    gzip: false
`
	fsys := fstest.MapFS{
		"assets.yaml":     file(manifest),
		"index.htm":       file("<p>"),
		"notes.txt":       file(strings.Repeat("note ", 200)),
		"app.js.map":      file("{}"),
		"drafts/wip.htm":  file("wip"),
		"public/keep.htm": file("keep"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Recursive: true, Compress: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"/index.htm", "/notes.txt", "/public/keep.htm"}, paths(table))

	// Forced gzip is kept even though it grows the file.
	assert.Equal(t, "text/html", table[0].ContentType)
	assert.True(t, table[0].Compressed)
	assert.Equal(t, "<p>", gunzip(t, table[0].Content))

	assert.False(t, table[1].Compressed)
}

func TestLoad_CustomManifestName(t *testing.T) {
	fsys := fstest.MapFS{
		"romserve.yaml": file("ignore: [\"*.bak\"]\n"),
		"a.txt":         file("a"),
		"a.txt.bak":     file("old"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Manifest: "romserve.yaml"})
	require.NoError(t, err)

	assert.Equal(t, []string{"/a.txt"}, paths(table))
}

func TestLoad_InvalidManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{name: "bad yaml", manifest: "assets: [", wantErr: "parse manifest"},
		{name: "bad pattern", manifest: "ignore: [\"[\"]", wantErr: "ignore pattern"},
		{name: "relative asset", manifest: "assets:\n  index.htm:\n    gzip: true\n", wantErr: "invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"assets.yaml": file(tt.manifest), "index.htm": file("x")}

			_, err := assetfs.Load(fsys, assetfs.Options{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DotDirectoriesAreWalked(t *testing.T) {
	fsys := fstest.MapFS{
		".well-known/security.txt": file("Contact: mailto:security@example.com"),
		".well-known/.secret":      file("x"),
		"index.htm":                file("<p>"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"/.well-known/security.txt", "/index.htm"}, paths(table))

	router := romserve.NewRouter(table, nil, romserve.RouterConfig{})
	resp, ok := router.Handle(http.MethodGet, "/.well-known/security.txt")
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestLoad_NamesWithSpaces(t *testing.T) {
	fsys := fstest.MapFS{
		"index.htm":           file("<p>"),
		"My Photo.jpg":        {Data: []byte("\xff\xd8\xff\xe0")},
		"docs/release..notes": file("v1"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Recursive: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"/My Photo.jpg", "/docs/release..notes", "/index.htm"}, paths(table))

	// The host decodes %20, so the router sees the raw space.
	router := romserve.NewRouter(table, nil, romserve.RouterConfig{})
	resp, ok := router.Handle(http.MethodGet, "/My Photo.jpg")
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "image/jpeg", resp.ContentType)
}

func TestLoad_SkipsUnservableNames(t *testing.T) {
	fsys := fstest.MapFS{
		"index.htm":     file("<p>"),
		"what?.txt":     file("x"),
		"tab\there.txt": file("x"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/index.htm"}, paths(table))
}

func TestLoad_EmptyFS(t *testing.T) {
	table, err := assetfs.Load(fstest.MapFS{}, assetfs.Options{Recursive: true})
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestLoad_ServesThroughRouter(t *testing.T) {
	fsys := fstest.MapFS{
		"index.htm":       file("<h1>hi</h1>"),
		"api/status.json": file("{}"),
	}

	table, err := assetfs.Load(fsys, assetfs.Options{Recursive: true})
	require.NoError(t, err)
	router := romserve.NewRouter(table, []string{"/api"}, romserve.RouterConfig{})

	resp, ok := router.Handle(http.MethodGet, "/")
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "<h1>hi</h1>", string(resp.Body))

	assert.False(t, router.CanHandle(http.MethodGet, "/api/status.json"))
}
