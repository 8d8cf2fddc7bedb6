package nets

import (
	"net/http"
	"net/url"
	"time"
)

type HTTPClient = *http.Client

func (Module) HTTPClient(
	dialer Dialer,
	getProxyURL GetProxyURL,
	isLocalAddr IsLocalAddr,
) HTTPClient {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
			Proxy: func(req *http.Request) (*url.URL, error) {
				u, err := getProxyURL()
				if err != nil {
					return nil, err
				}
				if u == nil || !isHTTPProxy(u) || isLocalAddr(req.URL.Host) {
					return nil, nil
				}
				return u, nil
			},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			MaxIdleConns:          4,
		},
	}
}
