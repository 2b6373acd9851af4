package port

import (
	"context"
	"io"

	"github.com/niksmo/shop-feed/internal/core/domain"
)

// SettingsProvider reads merchant-level settings. A missing setting
// yields an empty string, not an error.
type SettingsProvider interface {
	Setting(ctx context.Context, key, namespace string) (string, error)
}

// CatalogService pages through the product catalog. An empty batch
// signals the end of pagination.
type CatalogService interface {
	ListProducts(ctx context.Context, page, size int) ([]domain.Product, error)
}

type CurrencyService interface {
	ByCode(code string) (domain.Currency, error)
	FormatBase(amount float64, withSymbol bool) string
}

type ShippingService interface {
	CalculateVariant(ctx context.Context, variantID int64) (domain.ShippingQuote, error)
}

// AssetResolver maps an internal asset reference to a public URL.
type AssetResolver interface {
	ServeURL(ref string) string
}

// FeedGenerator is the capability every feed driver implements.
// Generate writes the serialized feed to the data sink and the
// transport headers to the header sink.
type FeedGenerator interface {
	Configure(domain.FeedConfig)
	Generate(ctx context.Context, header, data io.Writer) error
}

type FeedRunNotifier interface {
	NotifyRun(context.Context, domain.FeedRun) error
}
