package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/niksmo/shop-feed/internal/core/port"
)

const (
	// FeedName identifies this driver in run events and logs.
	FeedName = "google"

	// numPerBatch is the number of products fetched per catalog page.
	numPerBatch = 50

	settingsNamespace = "shop"
)

const (
	settingInvoiceAddress   = "invoice_address"
	settingInvoiceCompany   = "invoice_company"
	settingBaseCurrency     = "base_currency"
	settingWarehouseCountry = "warehouse_addr_country"
	settingBaseURL          = "base_url"
)

var _ port.FeedGenerator = (*GoogleFeed)(nil)

// GoogleFeed exports the in-stock product catalog as a Google
// Shopping compatible RSS document.
type GoogleFeed struct {
	settings port.SettingsProvider
	catalog  port.CatalogService
	currency port.CurrencyService
	shipping port.ShippingService
	assets   port.AssetResolver
	notifier port.FeedRunNotifier
	cfg      domain.FeedConfig
}

func NewGoogleFeed(
	settings port.SettingsProvider,
	catalog port.CatalogService,
	currency port.CurrencyService,
	shipping port.ShippingService,
	assets port.AssetResolver,
	notifier port.FeedRunNotifier,
) *GoogleFeed {
	return &GoogleFeed{
		settings: settings,
		catalog:  catalog,
		currency: currency,
		shipping: shipping,
		assets:   assets,
		notifier: notifier,
	}
}

func (f *GoogleFeed) Configure(cfg domain.FeedConfig) {
	f.cfg = cfg
}

// Generate writes the complete RSS document to the data sink and the
// transport headers to the header sink. A collaborator failure aborts
// the run; the partially written document must be discarded by the
// caller.
func (f *GoogleFeed) Generate(
	ctx context.Context, header, data io.Writer,
) error {
	const op = "GoogleFeed.Generate"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	start := time.Now()

	m, err := f.merchant(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	fw := newFeedWriter(data)
	fw.writeProlog()
	fw.openChannel(m.invoiceCompany, formatAddress(m.invoiceAddress), m.baseURL)

	run := domain.FeedRun{Feed: FeedName}
	for page := 0; ; page++ {
		nProducts, err := f.processBatch(ctx, page, m, fw)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if nProducts == 0 {
			break
		}
		run.Pages++
		run.Products += nProducts
	}

	fw.closeChannel()
	if err := fw.Err(); err != nil {
		return fmt.Errorf("%s: failed to write feed: %w", op, err)
	}

	if _, err := io.WriteString(header, "Content-Type: text/xml"); err != nil {
		return fmt.Errorf("%s: failed to write headers: %w", op, err)
	}

	run.Items = fw.items
	run.Duration = time.Since(start)
	run.GeneratedAt = time.Now()
	f.notifyRun(ctx, run, log)

	log.Info("feed generated",
		"pages", run.Pages,
		"products", run.Products,
		"items", run.Items,
		"duration", run.Duration,
	)
	return nil
}

// merchant holds the merchant-level settings one run operates with.
// Missing settings degrade to empty strings.
type merchant struct {
	invoiceAddress   string
	invoiceCompany   string
	warehouseCountry string
	baseURL          string
	baseCurrency     domain.Currency
}

func (f *GoogleFeed) merchant(ctx context.Context) (merchant, error) {
	const op = "GoogleFeed.merchant"

	var m merchant
	for _, s := range []struct {
		key string
		dst *string
	}{
		{settingInvoiceAddress, &m.invoiceAddress},
		{settingInvoiceCompany, &m.invoiceCompany},
		{settingWarehouseCountry, &m.warehouseCountry},
		{settingBaseURL, &m.baseURL},
	} {
		v, err := f.settings.Setting(ctx, s.key, settingsNamespace)
		if err != nil {
			return merchant{}, fmt.Errorf("%s: %w", op, err)
		}
		*s.dst = v
	}

	code, err := f.settings.Setting(ctx, settingBaseCurrency, settingsNamespace)
	if err != nil {
		return merchant{}, fmt.Errorf("%s: %w", op, err)
	}
	m.baseCurrency, err = f.currency.ByCode(code)
	if err != nil {
		return merchant{}, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// processBatch fetches one catalog page, maps every in-stock variant
// to a feed item and writes the items out. It returns the number of
// fetched products, the pagination termination signal: zero means the
// catalog is exhausted.
func (f *GoogleFeed) processBatch(
	ctx context.Context, page int, m merchant, fw *feedWriter,
) (int, error) {
	const op = "GoogleFeed.processBatch"

	products, err := f.catalog.ListProducts(ctx, page, numPerBatch)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var items []domain.FeedItem
	for _, p := range products {
		for _, v := range p.Variants {
			if v.StockStatus != domain.StockStatusInStock {
				continue
			}
			it, err := f.buildItem(ctx, m, p, v)
			if err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
			items = append(items, it)
		}
	}

	for _, it := range items {
		fw.writeItem(it, f.cfg.IncludeTax)
	}

	return len(products), nil
}

func (f *GoogleFeed) buildItem(
	ctx context.Context, m merchant, p domain.Product, v domain.Variant,
) (domain.FeedItem, error) {
	const op = "GoogleFeed.buildItem"

	it := domain.FeedItem{
		ProductID:       p.ID,
		VariantID:       v.ID,
		URL:             p.URL,
		Description:     stripMarkup(p.Description),
		GoogleCategory:  p.GoogleCategory,
		Condition:       "new",
		SKU:             v.SKU,
		Availability:    availability(v.StockStatus),
		ShippingCountry: m.warehouseCountry,
		ShippingService: "Standard",
	}

	if p.Label != v.Label {
		it.Title = p.Label + " - " + v.Label
	} else {
		it.Title = p.Label
	}

	if len(p.Brands) > 0 {
		it.Brand = p.Brands[0].Label
	} else {
		it.Brand = m.invoiceCompany
	}

	if len(p.Categories) > 0 {
		labels := make([]string, len(p.Categories))
		for i, c := range p.Categories {
			labels[i] = c.Label
		}
		it.Category = strings.Join(labels, ", ")
	}

	switch {
	case v.FeaturedImg != "":
		it.Image = f.assets.ServeURL(v.FeaturedImg)
	case p.FeaturedImg != "":
		it.Image = f.assets.ServeURL(p.FeaturedImg)
	}

	quote, err := f.shipping.CalculateVariant(ctx, v.ID)
	if err != nil {
		return domain.FeedItem{}, fmt.Errorf("%s: %w", op, err)
	}
	it.ShippingPrice = f.money(quote.TotalIncTax, m.baseCurrency)

	// Google requires the price to exclude tax unless the merchant
	// explicitly opted in to tax-inclusive pricing:
	// https://support.google.com/merchants/answer/2704214
	if f.cfg.IncludeTax {
		it.Price = f.money(v.Price.IncTax, m.baseCurrency)
	} else {
		it.Price = f.money(v.Price.ExTax, m.baseCurrency)
		it.Tax = f.money(v.Price.Tax, m.baseCurrency)
	}

	return it, nil
}

func (f *GoogleFeed) money(amount float64, c domain.Currency) string {
	return f.currency.FormatBase(amount, false) + " " + c.Code
}

func (f *GoogleFeed) notifyRun(
	ctx context.Context, run domain.FeedRun, log *slog.Logger,
) {
	if f.notifier == nil {
		return
	}
	if err := f.notifier.NotifyRun(ctx, run); err != nil {
		log.Error("failed to notify feed run", "err", err)
	}
}

func availability(s domain.StockStatus) string {
	if s == domain.StockStatusInStock {
		return "in stock"
	}
	return "out of stock"
}

// formatAddress collapses a multi-line invoice address into one
// comma-separated line for the channel description.
func formatAddress(address string) string {
	var lines []string
	for _, line := range strings.Split(address, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, ", ")
}
