package exchange

import (
	"net/http"
	"time"
)

// Options configure the transport; the execution functions themselves
// impose no timeout or redirect policy.
type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	SkipVerify      bool
	Transport       http.RoundTripper
}
