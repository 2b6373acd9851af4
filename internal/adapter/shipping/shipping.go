package shipping

import (
	"context"
	"fmt"
	"strconv"

	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/niksmo/shop-feed/internal/core/port"
)

const (
	flatRateSetting   = "shipping_flat_rate"
	settingsNamespace = "shop"
)

var _ port.ShippingService = (*FlatRateDriver)(nil)

// FlatRateDriver quotes every variant at the merchant-configured
// flat rate. An unset rate quotes zero.
type FlatRateDriver struct {
	settings port.SettingsProvider
}

func New(settings port.SettingsProvider) FlatRateDriver {
	return FlatRateDriver{settings}
}

func (d FlatRateDriver) CalculateVariant(
	ctx context.Context, variantID int64,
) (domain.ShippingQuote, error) {
	const op = "FlatRateDriver.CalculateVariant"

	rate, err := d.settings.Setting(ctx, flatRateSetting, settingsNamespace)
	if err != nil {
		return domain.ShippingQuote{}, fmt.Errorf("%s: %w", op, err)
	}
	if rate == "" {
		return domain.ShippingQuote{}, nil
	}

	cost, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return domain.ShippingQuote{}, fmt.Errorf(
			"%s: invalid %s setting: %w", op, flatRateSetting, err,
		)
	}
	return domain.ShippingQuote{TotalIncTax: cost}, nil
}
