package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyx-space/hifitime-sub000/network"
)

const leapPayload = "2272060800\t10\n2287785600\t11\n"

func serveDatasets(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/leap-seconds.list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, leapPayload)
	})

	mux.HandleFunc("/leap-seconds.list.gz", func(w http.ResponseWriter, r *http.Request) {
		zw := gzip.NewWriter(w)
		_, err := zw.Write([]byte(leapPayload))
		require.NoError(t, err)
		require.NoError(t, zw.Close())
	})

	return httptest.NewServer(mux)
}

func TestDoJobFallback(t *testing.T) {
	server := serveDatasets(t)
	defer server.Close()

	dir := t.TempDir()
	cfg = Config{}

	job := Job{DataSet: DataSet{
		Name: "leap",
		Kind: KIND_LEAP_SECONDS,
		Path: filepath.Join(dir, "leap-seconds.list"),
		Sources: []network.Source{
			{Name: "dead", Url: server.URL + "/no-such-file"},
			{Name: "mirror", Url: server.URL + "/leap-seconds.list"},
		},
	}}

	require.NoError(t, doJob(&job))
	assert.Equal(t, 2, job.Index)

	data, err := os.ReadFile(job.DataSet.Path)
	require.NoError(t, err)
	assert.Equal(t, leapPayload, string(data))

	// A present file short-circuits with io.EOF unless forced.
	assert.Equal(t, io.EOF, doJob(&job))

	cfg.Force = true
	assert.NoError(t, doJob(&job))
}

func TestDoJobGunzip(t *testing.T) {
	server := serveDatasets(t)
	defer server.Close()

	dir := t.TempDir()
	cfg = Config{}

	job := Job{DataSet: DataSet{
		Name:    "leap",
		Kind:    KIND_LEAP_SECONDS,
		Path:    filepath.Join(dir, "leap-seconds.list"),
		Sources: []network.Source{{Name: "gz", Url: server.URL + "/leap-seconds.list.gz"}},
	}}

	require.NoError(t, doJob(&job))

	data, err := os.ReadFile(job.DataSet.Path)
	require.NoError(t, err)
	assert.Equal(t, leapPayload, string(data))

	// The compressed payload does not linger next to the result.
	_, err = os.Stat(job.DataSet.Path + ".gz")
	assert.True(t, os.IsNotExist(err))
}

func TestProcess(t *testing.T) {
	server := serveDatasets(t)
	defer server.Close()

	dir := t.TempDir()
	cfg = Config{
		Workers: 2,
		Retries: 1,
		DataSets: []DataSet{
			{
				Name:    "leap",
				Kind:    KIND_LEAP_SECONDS,
				Path:    filepath.Join(dir, "leap-seconds.list"),
				Sources: []network.Source{{Name: "ok", Url: server.URL + "/leap-seconds.list"}},
			},
			{
				Name:    "eop",
				Kind:    KIND_EOP,
				Path:    filepath.Join(dir, "eop2.short"),
				Sources: []network.Source{{Name: "dead", Url: server.URL + "/gone"}},
			},
		},
	}

	failed := process()
	assert.Equal(t, []string{"eop"}, failed)

	_, err := os.Stat(filepath.Join(dir, "leap-seconds.list"))
	assert.NoError(t, err)
}
