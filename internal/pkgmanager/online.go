package pkgmanager

import (
	"context"
	"net"
	"net/url"
	"os"
	"time"
)

const (
	yarnRegistryHost = "registry.yarnpkg.com"
	lookupTimeout    = 3 * time.Second
)

// Resolver is the subset of *net.Resolver used by the online check.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// OnlineChecker reports whether the package registry looks reachable.
type OnlineChecker struct {
	resolver Resolver
	getenv   func(string) string
}

// NewOnlineChecker creates an OnlineChecker backed by the default DNS resolver
func NewOnlineChecker() *OnlineChecker {
	return &OnlineChecker{
		resolver: net.DefaultResolver,
		getenv:   os.Getenv,
	}
}

// IsOnline resolves the yarn registry, and failing that the configured HTTPS proxy.
func (c *OnlineChecker) IsOnline(ctx context.Context) bool {
	if c.lookup(ctx, yarnRegistryHost) {
		return true
	}

	proxy := c.getenv("HTTPS_PROXY")
	if proxy == "" {
		proxy = c.getenv("https_proxy")
	}
	if proxy == "" {
		return false
	}

	u, err := url.Parse(proxy)
	if err != nil || u.Hostname() == "" {
		return false
	}
	return c.lookup(ctx, u.Hostname())
}

func (c *OnlineChecker) lookup(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	addrs, err := c.resolver.LookupHost(ctx, host)
	return err == nil && len(addrs) > 0
}
