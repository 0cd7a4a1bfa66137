package movie_api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const cloudflareUserAgent = "Mozilla/5.0 (Linux) AppleWebkit/534.30 (KHTML, like Gecko) PT/3.8.0"

var cloudflareRe = regexp.MustCompile(`^cloudflare\+([a-zA-Z][a-zA-Z0-9.-]*)://([^/]+)(/.*)?$`)

type endpoint struct {
	url       string
	host      string
	userAgent string
}

// rewriteURL turns cloudflare+<scheme>://<host>/<path> into
// <scheme>://<cloudflareHost>/<path> sent with Host: <host>.
// Any other url is returned as is.
func rewriteURL(base string, cloudflareHost string) endpoint {
	m := cloudflareRe.FindStringSubmatch(base)
	if m == nil {
		return endpoint{url: base}
	}
	path := m[3]
	if path == "" {
		path = "/"
	}
	return endpoint{
		url:       fmt.Sprintf("%v://%v%v", m[1], cloudflareHost, path),
		host:      m[2],
		userAgent: cloudflareUserAgent,
	}
}

// fetch sends GET {base}{path}?{query} to every configured url in turn
// until one of them returns a usable body decoded into T.
func fetch[T any](ctx context.Context, api *Api, path string, query url.Values) (T, error) {
	l := log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"path":       path,
	})
	i := 0
	res, err := retry.DoWithData(
		func() (T, error) {
			base := api.urls[i]
			i++
			var v T
			data, err := api.do(ctx, rewriteURL(base, api.cloudflareHost), path, query)
			if err != nil {
				return v, err
			}
			if err := json.Unmarshal(data, &v); err != nil {
				return v, errors.Wrap(ErrInvalidBody, err.Error())
			}
			return v, nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(len(api.urls))),
		retry.Delay(0),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			l.WithError(err).
				WithField("url", api.urls[n]).
				WithField("attempt", n+1).
				Warn("movie api request failed")
		}),
	)
	if err != nil {
		l.WithError(err).Error("all movie api urls failed")
		return res, err
	}
	return res, nil
}

func (api *Api) do(ctx context.Context, ep endpoint, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.url+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if ep.host != "" {
		req.Host = ep.host
	}
	if ep.userAgent != "" {
		req.Header.Set("User-Agent", ep.userAgent)
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{URL: req.URL.String(), Code: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}
	return checkBody(data)
}

// checkBody rejects empty bodies, malformed json and api error objects.
// An error field of false, "", 0 or null does not count as an error.
func checkBody(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, ErrEmptyBody
	}
	if !json.Valid(data) {
		return nil, ErrInvalidBody
	}
	if data[0] != '{' {
		return data, nil
	}
	var body struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, errors.Wrap(ErrInvalidBody, err.Error())
	}
	switch e := body.Error.(type) {
	case nil:
	case bool:
		if e {
			return nil, &APIError{Message: "true"}
		}
	case string:
		if e != "" {
			return nil, &APIError{Message: e}
		}
	case float64:
		if e != 0 {
			return nil, &APIError{Message: fmt.Sprint(e)}
		}
	default:
		return nil, &APIError{Message: fmt.Sprint(e)}
	}
	return data, nil
}
