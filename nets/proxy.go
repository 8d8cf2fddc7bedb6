package nets

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/bf/configs"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/vars"
	"golang.org/x/net/proxy"
)

type ProxyAddr string

func (p ProxyAddr) ConfigExpr() string {
	return "ProxyAddr"
}

var _ configs.Configurable = ProxyAddr("")

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	// tests never reach the network through a proxy
	if mode == modes.ModeDevelopment {
		return ""
	}

	return vars.FirstNonZero(
		configs.First[ProxyAddr](loader, "proxy_addr"),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTPS_PROXY")),
		ProxyAddr(os.Getenv("https_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
	)
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		return parseProxyAddr(string(proxyAddr))
	})
}

func parseProxyAddr(addr string) (*url.URL, error) {
	if addr == "" {
		return nil, nil
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("bad proxy address %q: %w", addr, err)
	}
	switch u.Scheme {
	case "socks", "socks5h":
		u.Scheme = "socks5"
	case "":
		return nil, fmt.Errorf("bad proxy address %q: no scheme", addr)
	}
	return u, nil
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil || isHTTPProxy(u) {
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		contextDialer, ok := proxyDialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s does not support contexts", u.Redacted())
		}
		return DialerFunc(contextDialer.DialContext), nil
	})
}

// http proxies are handled by the transport, not the dialer
func isHTTPProxy(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}
