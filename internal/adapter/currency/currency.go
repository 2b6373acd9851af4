package currency

import (
	"strconv"
	"strings"

	"github.com/niksmo/shop-feed/internal/core/domain"
	"github.com/niksmo/shop-feed/internal/core/port"
)

var _ port.CurrencyService = (*Service)(nil)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"RUB": "₽",
	"JPY": "¥",
}

// Service formats amounts in the shop's base currency.
type Service struct {
	base domain.Currency
}

func New(baseCode string) Service {
	c, _ := byCode(baseCode)
	return Service{base: c}
}

func (s Service) ByCode(code string) (domain.Currency, error) {
	return byCode(code)
}

// FormatBase renders a two-decimal amount, optionally prefixed with
// the base currency symbol.
func (s Service) FormatBase(amount float64, withSymbol bool) string {
	v := strconv.FormatFloat(amount, 'f', 2, 64)
	if withSymbol {
		return s.base.Symbol + v
	}
	return v
}

func byCode(code string) (domain.Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	return domain.Currency{Code: code, Symbol: symbols[code]}, nil
}
