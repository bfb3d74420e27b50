package exchange

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Send performs a single attempt. Every failure, including a request the
// transport refuses to build, is reported as a *Failure; nothing is retried.
func Send(ctx context.Context, client *http.Client, r *Request) Result {
	httpReq, err := BuildHTTPRequest(ctx, r)
	if err != nil {
		return newFailure(err)
	}

	start := time.Now()
	resp, err := client.Do(httpReq)
	if err != nil {
		return newFailure(err)
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return newFailure(errors.Wrap(err, "reading response body"))
	}
	elapsed := time.Since(start)

	data := strings.ToValidUTF8(string(body), "\uFFFD")
	return &Success{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Proto:      resp.Proto,
		Headers:    flattenHeader(resp.Header),
		Data:       data,
		Time:       elapsed.Milliseconds(),
		Size:       len(data),
	}
}

func newFailure(err error) *Failure {
	return &Failure{Error: failureMessage(err), Time: 0}
}

// failureMessage strips the "Get "<url>": " prefix net/http adds so the
// transport's own message is shown.
func failureMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}

func statusText(resp *http.Response) string {
	text := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	text = strings.TrimSpace(text)
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func flattenHeader(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for name, values := range header {
		out[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return out
}
