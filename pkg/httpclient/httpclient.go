package httpclient

import (
	"net"
	"net/http"
	"time"
)

// New returns an http.Client tuned for many concurrent calls against a
// single API host. There is no overall request timeout; live searches can
// legitimately take a while and cancellation is not supported.
func New() *http.Client {
	tr := &http.Transport{
		MaxIdleConns:          20,
		MaxConnsPerHost:       20,
		IdleConnTimeout:       30 * time.Second,
		ForceAttemptHTTP2:     true,
		ExpectContinueTimeout: 1 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}
	return &http.Client{Transport: tr}
}
