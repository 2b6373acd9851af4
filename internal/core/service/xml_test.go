package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeedItem() domain.FeedItem {
	return domain.FeedItem{
		ProductID:       7,
		VariantID:       42,
		Title:           "Shirt - Red",
		Description:     "Soft cotton",
		URL:             "https://shop.test/shirt",
		Category:        "Apparel, Tops",
		GoogleCategory:  "Apparel & Accessories",
		Brand:           "Acme",
		Image:           "https://cdn.test/shirt.jpg",
		Condition:       "new",
		Availability:    "in stock",
		SKU:             "SKU-42",
		Price:           "10.00 USD",
		Tax:             "2.00 USD",
		ShippingCountry: "GB",
		ShippingService: "Standard",
		ShippingPrice:   "3.50 USD",
	}
}

func TestFeedWriterItemOrder(t *testing.T) {
	var sb strings.Builder
	fw := newFeedWriter(&sb)
	fw.writeItem(testFeedItem(), false)
	require.NoError(t, fw.Err())
	assert.Equal(t, 1, fw.items)

	out := sb.String()
	fields := []string{
		"<g:id>7.42</g:id>",
		"<title>",
		"<description>",
		"<g:product_type>",
		"<g:google_product_category>",
		"<link>",
		"<g:image_link>",
		"<g:condition>",
		"<g:availability>",
		"<g:price>10.00 USD</g:price>",
		"<g:tax>2.00 USD</g:tax>",
		"<g:brand>",
		"<g:gtin>SKU-42</g:gtin>",
		"<g:shipping>",
		"<g:country>GB</g:country>",
		"<g:service>Standard</g:service>",
		"<g:price>3.50 USD</g:price>",
		"</g:shipping>",
		"</item>",
	}

	last := -1
	for _, field := range fields {
		idx := strings.Index(out[last+1:], field)
		require.GreaterOrEqual(t, idx, 0, "missing or misordered %s", field)
		last += 1 + idx
	}
}

func TestFeedWriterTaxIncluded(t *testing.T) {
	var sb strings.Builder
	fw := newFeedWriter(&sb)
	fw.writeItem(testFeedItem(), true)
	require.NoError(t, fw.Err())
	assert.NotContains(t, sb.String(), "<g:tax>")
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestFeedWriterStickyError(t *testing.T) {
	wErr := errors.New("sink closed")
	fw := newFeedWriter(failingWriter{wErr})
	fw.writeProlog()
	fw.openChannel("t", "d", "l")
	fw.closeChannel()
	assert.ErrorIs(t, fw.Err(), wErr)
}
