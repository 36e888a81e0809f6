package infra

import (
	"fmt"
	"net/http/httputil"
	"net/url"

	"github.com/labstack/echo/v4"
)

// Passthrough forwards requests this server does not recognize to the real
// backend, so the simulated persistence layer can be substituted by pointing
// UPSTREAM_URL at an actual deployment
func Passthrough(upstream string) (echo.HandlerFunc, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("failed to parse upstream url - %w", err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	return func(c echo.Context) error {
		proxy.ServeHTTP(c.Response(), c.Request())
		return nil
	}, nil
}
