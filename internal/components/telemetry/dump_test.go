package telemetry

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

func TestFormatRequestBodyWithoutBody(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	require.Equal(t, "", formatRequestBody(req))

	req.GetBody = func() (io.ReadCloser, error) { return nil, nil }
	require.Equal(t, "", formatRequestBody(req))

	require.Equal(t, "", formatRequestBody(nil))
}

func TestDumpResty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "hello from %s", r.URL.Path)
	}))
	t.Cleanup(server.Close)

	dir := filepath.Join(t.TempDir(), "dump")
	client := resty.New().SetBaseURL(server.URL)
	err := DumpResty(client, dir, NoopAPI{})
	require.NoError(t, err)

	_, err = client.R().Get("/listing")
	require.NoError(t, err)
	_, err = client.R().SetBody("page=2").Post("/search")
	require.NoError(t, err)

	get, err := os.ReadFile(filepath.Join(dir, "00001.txt"))
	require.NoError(t, err)
	require.Contains(t, string(get), "GET "+server.URL+"/listing")
	require.Contains(t, string(get), "hello from /listing")

	post, err := os.ReadFile(filepath.Join(dir, "00002.txt"))
	require.NoError(t, err)
	require.Contains(t, string(post), "page=2")
	require.Contains(t, string(post), "hello from /search")
}
