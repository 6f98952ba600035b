package core

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	"go.hacdias.com/signpost/log"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// Fetcher retrieves the destination documents that metadata is extracted
// from. Bodies are read up to the configured size limit and converted to
// UTF-8 according to their declared encoding.
type Fetcher struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
	log         *zap.SugaredLogger
}

func NewFetcher(cfg *Config) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:   cfg.UserAgent,
		maxBodySize: cfg.MaxBodySize,
		log:         log.S().Named("fetch"),
	}
}

// Fetch GETs the given URL and returns the body and status code. The body
// is decoded to UTF-8 using the Content-Type header, a byte order mark, or
// the document's own meta tags, in that order. The status code is not an
// error: callers decide what, if anything, it means.
func (f *Fetcher) Fetch(url string) ([]byte, int, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = res.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(res.Body, f.maxBodySize))
	if err != nil {
		return nil, 0, err
	}

	if len(body) > 0 {
		utf8Reader, err := charset.NewReader(bytes.NewReader(body), res.Header.Get("Content-Type"))
		if err != nil {
			return nil, 0, err
		}

		body, err = io.ReadAll(utf8Reader)
		if err != nil {
			return nil, 0, err
		}
	}

	if mime := mimetype.Detect(body); !mime.Is("text/html") {
		f.log.Debugw("response does not look like html", "url", url, "detected", mime.String())
	}

	return body, res.StatusCode, nil
}
