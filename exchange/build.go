package exchange

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/version"
	"github.com/pkg/errors"
)

// Request is a request derived from a draft. It is a snapshot: edits made to
// the draft after derivation do not reach it.
type Request struct {
	Method  input.Method
	URL     string
	Header  http.Header
	Body    string
	HasBody bool
}

// Derive computes the request that would be sent for the draft.
func Derive(draft *input.Draft) *Request {
	header := BuildHeader(draft.ActiveHeaders())
	for name, values := range AuthHeader(draft.AuthType, draft.AuthValue) {
		header[name] = values
	}

	r := &Request{
		Method: draft.Method,
		URL:    DeriveURL(draft.URL, draft.ActiveParams()),
		Header: header,
	}
	if draft.Method.AllowsBody() {
		r.Body = draft.Body
		r.HasBody = true
	}
	return r
}

// DeriveURL appends the enabled, non-empty-key params to the query of raw.
// Existing query parameters are kept and repeated keys stay repeated. When
// raw is not an absolute URL it is returned unchanged.
func DeriveURL(raw string, params []input.Entry) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return raw
	}

	active := input.ActiveEntries(params)
	if len(active) == 0 {
		return raw
	}

	pairs := make([]string, 0, len(active))
	for _, p := range active {
		pairs = append(pairs, url.QueryEscape(p.Key)+"="+url.QueryEscape(p.Value))
	}
	appended := strings.Join(pairs, "&")
	if u.RawQuery == "" {
		u.RawQuery = appended
	} else {
		u.RawQuery += "&" + appended
	}
	return u.String()
}

// BuildHeader collects the enabled, non-empty-key entries. On duplicate
// names the last entry wins.
func BuildHeader(entries []input.Entry) http.Header {
	header := make(http.Header)
	for _, e := range input.ActiveEntries(entries) {
		header.Set(e.Key, e.Value)
	}
	return header
}

// AuthHeader returns the header synthesized for the auth selection. It is
// empty for AuthNone and for an empty value.
func AuthHeader(authType input.AuthType, value string) http.Header {
	header := make(http.Header)
	if value == "" {
		return header
	}
	switch authType {
	case input.AuthBearer:
		header.Set("Authorization", "Bearer "+value)
	case input.AuthBasic:
		header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(value)))
	case input.AuthAPIKey:
		header.Set("X-API-Key", value)
	}
	return header
}

var userAgent = version.Program + "/" + version.Current().String()

// BuildHTTPRequest turns a derived request into an *http.Request.
func BuildHTTPRequest(ctx context.Context, r *Request) (*http.Request, error) {
	var body io.Reader
	if r.HasBody {
		body = strings.NewReader(r.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(r.Method), r.URL, body)
	if err != nil {
		return nil, errors.Wrap(err, "building HTTP request")
	}

	for name, values := range r.Header {
		httpReq.Header[name] = append([]string(nil), values...)
	}
	if host := r.Header.Get("Host"); host != "" {
		httpReq.Host = host
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}
	return httpReq, nil
}
