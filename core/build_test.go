package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCore(cfg *Config) *Core {
	if cfg == nil {
		cfg = &Config{
			OutDirectory:  DefaultOutDirectory,
			RedirectsFile: DefaultRedirectsFile,
			UserAgent:     defaultUserAgent,
			Timeout:       defaultTimeout,
			MaxBodySize:   defaultMaxBodySize,
		}
	}

	return &Core{
		cfg:      cfg,
		log:      zap.NewNop().Sugar(),
		sourceFS: &afero.Afero{Fs: afero.NewMemMapFs()},
		outFS:    &afero.Afero{Fs: afero.NewMemMapFs()},
		fetcher:  NewFetcher(cfg),
	}
}

func newMetadataServer(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head>
<meta property="og:title" content="Example Domain">
<meta property="og:image" content="https://example.com/cover.png">
</head><body></body></html>`))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestBuild(t *testing.T) {
	server := newMetadataServer(t)

	co := newTestCore(nil)
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte("home: "+server.URL+"\n"), 0644))

	require.NoError(t, co.Build())

	data, err := co.outFS.ReadFile("home.html")
	require.NoError(t, err)

	expected := "<!DOCTYPE html>\n" +
		"<html lang=\"en\">\n" +
		"<head>\n" +
		"    <meta charset=\"UTF-8\">\n" +
		"    <title>Redirecting...</title>\n" +
		"    <meta http-equiv=\"refresh\" content=\"0; url=" + server.URL + "\">\n" +
		"    <meta property=\"og:title\" content=\"Example Domain\">\n" +
		"    <meta property=\"og:image\" content=\"https://example.com/cover.png\">\n" +
		"</head>\n" +
		"<body><p>Redirecting to <a href=\"" + server.URL + "\">" + server.URL + "</a>.</p></body>\n" +
		"</html>\n"
	assert.Equal(t, expected, string(data))
}

func TestBuildStopsAtFirstFailure(t *testing.T) {
	server := newMetadataServer(t)

	unreachable := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	unreachable.Close()

	co := newTestCore(nil)
	data := "first: " + server.URL + "\n" +
		"broken: " + unreachable.URL + "\n" +
		"last: " + server.URL + "\n"
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte(data), 0644))

	err := co.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), unreachable.URL)

	exists, _ := co.outFS.Exists("first.html")
	assert.True(t, exists, "page before the failure should have been written")

	for _, filename := range []string{"broken.html", "last.html"} {
		exists, _ = co.outFS.Exists(filename)
		assert.False(t, exists, "%s should not have been written", filename)
	}
}

func TestBuildIgnoresStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<html><head><meta property="og:title" content="Gone But Tagged"></head></html>`))
	}))
	t.Cleanup(server.Close)

	co := newTestCore(nil)
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte("gone: "+server.URL+"\n"), 0644))

	require.NoError(t, co.Build())

	data, err := co.outFS.ReadFile("gone.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<meta property="og:title" content="Gone But Tagged">`)
}

func TestBuildNoMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Bare</title></head><body></body></html>`))
	}))
	t.Cleanup(server.Close)

	co := newTestCore(nil)
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte("bare: "+server.URL+"\n"), 0644))

	require.NoError(t, co.Build())

	data, err := co.outFS.ReadFile("bare.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `http-equiv="refresh"`)
	assert.NotContains(t, string(data), `property="og:`)
}

func TestBuildDecodesCharset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte("<html><head><meta property=\"og:title\" content=\"Caf\xe9 Corretto\"></head></html>"))
	}))
	t.Cleanup(server.Close)

	co := newTestCore(nil)
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte("cafe: "+server.URL+"\n"), 0644))

	require.NoError(t, co.Build())

	data, err := co.outFS.ReadFile("cafe.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<meta property="og:title" content="Café Corretto">`)
}

func TestBuildFilenameSuffix(t *testing.T) {
	server := newMetadataServer(t)

	co := newTestCore(nil)
	data := "plain: " + server.URL + "\n" +
		"suffixed.html: " + server.URL + "\n"
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte(data), 0644))

	require.NoError(t, co.Build())

	for _, filename := range []string{"plain.html", "suffixed.html"} {
		exists, _ := co.outFS.Exists(filename)
		assert.True(t, exists, "%s should have been written", filename)
	}

	exists, _ := co.outFS.Exists("suffixed.html.html")
	assert.False(t, exists)
}

func TestBuildOverwritesExisting(t *testing.T) {
	server := newMetadataServer(t)

	co := newTestCore(nil)
	require.NoError(t, co.outFS.WriteFile("home.html", []byte("stale content"), 0644))
	require.NoError(t, co.sourceFS.WriteFile(DefaultRedirectsFile, []byte("home: "+server.URL+"\n"), 0644))

	require.NoError(t, co.Build())

	data, err := co.outFS.ReadFile("home.html")
	require.NoError(t, err)
	assert.NotEqual(t, "stale content", string(data))
	assert.Contains(t, string(data), `http-equiv="refresh"`)
}
