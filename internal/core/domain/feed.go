package domain

import "time"

// FeedConfig carries the merchant-level options of one feed driver.
type FeedConfig struct {
	IncludeTax bool
}

// FeedItem is the flattened representation of one sellable
// (product, variant) pair, ready for serialization.
type FeedItem struct {
	ProductID       int64
	VariantID       int64
	Title           string
	Description     string
	URL             string
	Category        string
	GoogleCategory  string
	Brand           string
	Image           string
	Condition       string
	Availability    string
	SKU             string
	Price           string
	Tax             string
	ShippingCountry string
	ShippingService string
	ShippingPrice   string
}

// FeedRun describes one completed feed generation.
type FeedRun struct {
	Feed        string
	Pages       int
	Products    int
	Items       int
	Duration    time.Duration
	GeneratedAt time.Time
}
