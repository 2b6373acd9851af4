package service

import (
	"html"
	"io"
	"strconv"

	"github.com/niksmo/shop-feed/internal/core/domain"
)

// feedWriter emits the RSS document piece by piece. The first write
// error sticks; later writes are dropped and the error is reported by
// Err.
type feedWriter struct {
	w     io.Writer
	items int
	err   error
}

func newFeedWriter(w io.Writer) *feedWriter {
	return &feedWriter{w: w}
}

func (fw *feedWriter) Err() error {
	return fw.err
}

func (fw *feedWriter) writeProlog() {
	fw.write(`<?xml version="1.0" encoding="utf-8"?>`)
	fw.write(`<rss version="2.0" xmlns:g="http://base.google.com/ns/1.0">`)
}

func (fw *feedWriter) openChannel(title, description, link string) {
	fw.write("<channel>")
	fw.write("<title>" + cdata(title) + "</title>")
	fw.write("<description>" + cdata(description) + "</description>")
	fw.write("<link>" + cdata(link) + "</link>")
}

func (fw *feedWriter) closeChannel() {
	fw.write("</channel>")
	fw.write("</rss>")
}

// writeItem serializes one feed item. The child element order is
// mandated by the Merchant Center feed format and must not change.
func (fw *feedWriter) writeItem(it domain.FeedItem, includeTax bool) {
	fw.write("<item>")
	fw.write("<g:id>" + itemID(it) + "</g:id>")
	fw.write("<title>" + cdata(escape(it.Title)) + "</title>")
	fw.write("<description>" + cdata(escape(it.Description)) + "</description>")
	fw.write("<g:product_type>" + cdata(escape(it.Category)) + "</g:product_type>")
	if it.GoogleCategory != "" {
		fw.write("<g:google_product_category>" +
			cdata(escape(it.GoogleCategory)) + "</g:google_product_category>")
	}
	fw.write("<link>" + it.URL + "</link>")
	fw.write("<g:image_link>" + it.Image + "</g:image_link>")
	fw.write("<g:condition>" + it.Condition + "</g:condition>")
	fw.write("<g:availability>" + it.Availability + "</g:availability>")
	fw.write("<g:price>" + it.Price + "</g:price>")
	if !includeTax {
		fw.write("<g:tax>" + it.Tax + "</g:tax>")
	}
	fw.write("<g:brand>" + cdata(escape(it.Brand)) + "</g:brand>")
	fw.write("<g:gtin>" + it.SKU + "</g:gtin>")
	fw.write("<g:shipping>")
	fw.write("<g:country>" + escape(it.ShippingCountry) + "</g:country>")
	fw.write("<g:service>" + it.ShippingService + "</g:service>")
	fw.write("<g:price>" + it.ShippingPrice + "</g:price>")
	fw.write("</g:shipping>")
	fw.write("</item>")
	fw.items++
}

func (fw *feedWriter) write(s string) {
	if fw.err != nil {
		return
	}
	_, fw.err = io.WriteString(fw.w, s)
}

func itemID(it domain.FeedItem) string {
	return strconv.FormatInt(it.ProductID, 10) +
		"." + strconv.FormatInt(it.VariantID, 10)
}

func cdata(s string) string {
	return "<![CDATA[" + s + "]]>"
}

func escape(s string) string {
	return html.EscapeString(s)
}
