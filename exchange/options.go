package exchange

import (
	"net/http"
	"time"
)

type Options struct {
	// Timeout bounds the whole exchange. Zero leaves it to the transport.
	Timeout         time.Duration
	FollowRedirects bool
	SkipVerify      bool
	ForceHTTP1      bool
	Transport       http.RoundTripper
}
