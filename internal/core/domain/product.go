package domain

type StockStatus string

const (
	StockStatusInStock    StockStatus = "IN_STOCK"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

type (
	Product struct {
		ID             int64
		Label          string
		Description    string
		URL            string
		GoogleCategory string
		FeaturedImg    string
		Brands         []Brand
		Categories     []Category
		Variants       []Variant
	}

	Variant struct {
		ID          int64
		ProductID   int64
		SKU         string
		Label       string
		StockStatus StockStatus
		FeaturedImg string
		Price       PriceBreakdown
	}

	// PriceBreakdown holds the unit price of one variant in the
	// shop's base currency.
	PriceBreakdown struct {
		IncTax float64
		ExTax  float64
		Tax    float64
	}

	Brand struct {
		ID    int64
		Label string
	}

	Category struct {
		ID    int64
		Label string
	}
)

type Currency struct {
	Code   string
	Symbol string
}

type ShippingQuote struct {
	TotalIncTax float64
}
