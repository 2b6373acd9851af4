package cdn

import (
	"strings"

	"github.com/niksmo/shop-feed/internal/core/port"
)

var _ port.AssetResolver = (*Resolver)(nil)

// Resolver maps stored asset references to public CDN URLs.
type Resolver struct {
	baseURL string
}

func New(baseURL string) Resolver {
	return Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r Resolver) ServeURL(ref string) string {
	if ref == "" {
		return ""
	}
	return r.baseURL + "/" + strings.TrimLeft(ref, "/")
}
