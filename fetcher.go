package rsdoc

import "context"

// Response is the outcome of a single HTTP request.
// A non-success status is a valid Response, not an error.
type Response struct {
	URL        string
	StatusCode int
	Body       string
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher performs GET requests against documentation hosts.
type Fetcher interface {
	// Fetch requests the URL with the given headers and returns the
	// response regardless of its status code. An error is returned only
	// for transport failures (DNS, connection, timeout, cancellation).
	Fetch(ctx context.Context, url string, headers map[string]string) (*Response, error)
}
