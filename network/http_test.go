package network

import (
	"compress/gzip"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = "#\n2272060800\t10\t# 1 Jan 1972\n2287785600\t11\t# 1 Jul 1972\n"

func serveWithRange(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := payload

		if rng := r.Header.Get("Range"); rng != "" {
			offset, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(rng, "bytes="), "-"))
			require.NoError(t, err)

			if offset >= len(body) {
				w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
				return
			}

			body = body[offset:]
			w.WriteHeader(http.StatusPartialContent)
		}

		fmt.Fprint(w, body)
	}))
}

func TestHTTPDownload(t *testing.T) {
	server := serveWithRange(t)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "leap-seconds.list")
	task := FetchTask{Source: Source{Name: "test", Url: server.URL}, Path: path}

	require.Nil(t, Fetch(&task))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
	assert.Equal(t, int64(len(payload)), task.Size)
}

func TestHTTPDownloadResume(t *testing.T) {
	server := serveWithRange(t)
	defer server.Close()

	path := filepath.Join(t.TempDir(), "partial.dat")
	require.NoError(t, os.WriteFile(path, []byte(payload[:10]), 0664))

	task := FetchTask{
		Source:   Source{Name: "test", Url: server.URL},
		Path:     path,
		Size:     10,
		Continue: true,
	}

	require.Nil(t, Fetch(&task))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	// Resuming a complete file is a no-op.
	task.Size = int64(len(payload))
	require.Nil(t, Fetch(&task))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))
}

func TestHTTPDownloadErrors(t *testing.T) {
	notFound := httptest.NewServer(http.NotFoundHandler())
	defer notFound.Close()

	task := FetchTask{Source: Source{Url: notFound.URL}, Path: filepath.Join(t.TempDir(), "x")}
	terr := Fetch(&task)
	require.NotNil(t, terr)
	assert.False(t, terr.IsTemporary())

	flaky := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer flaky.Close()

	task = FetchTask{Source: Source{Url: flaky.URL}, Path: filepath.Join(t.TempDir(), "y")}
	terr = Fetch(&task)
	require.NotNil(t, terr)
	assert.True(t, terr.IsTemporary())

	task = FetchTask{Source: Source{Url: "ftp://example.com/file"}, Path: "z"}
	terr = Fetch(&task)
	require.NotNil(t, terr)
	assert.False(t, terr.IsTemporary())
}

func TestGunzipFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.gz")
	des := filepath.Join(dir, "data")

	fp, err := os.Create(src)
	require.NoError(t, err)
	zw := gzip.NewWriter(fp)
	_, err = zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fp.Close())

	require.NoError(t, GunzipFile(src, des))

	data, err := os.ReadFile(des)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	assert.Error(t, GunzipFile(filepath.Join(dir, "missing.gz"), des))
}

func TestSizeRepr(t *testing.T) {
	assert.Equal(t, "512 B", SizeRepr(512))
	assert.Equal(t, "1.00 KB", SizeRepr(1024))
	assert.Equal(t, "1.50 MB", SizeRepr(3*ONE_MEGABYTE/2))
	assert.Equal(t, "2.00 GB", SizeRepr(2*ONE_GIGABYTE))
	assert.Equal(t, "1.00 TB", SizeRepr(ONE_TERABYTE))
}
