package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownCurrency = errors.New("unknown currency")

const BaseCurrency = "EUR"

// DefaultExchangeRates are units of currency per 1 EUR.
func DefaultExchangeRates() map[string]string {
	return map[string]string{
		"EUR": "1.00",
		"USD": "1.06",
		"AUD": "1.62",
		"SAR": "3.98",
	}
}

// CarbonPricer values CO2 quantities at a fixed carbon price.
type CarbonPricer struct {
	pricePerTon decimal.Decimal
	rates       map[string]decimal.Decimal
}

func NewCarbonPricer(pricePerTonEUR float64, rates map[string]string) (*CarbonPricer, error) {
	if pricePerTonEUR < 0 {
		return nil, fmt.Errorf("new carbon pricer: price must be non-negative (got %v)", pricePerTonEUR)
	}

	p := &CarbonPricer{
		pricePerTon: decimal.NewFromFloat(pricePerTonEUR),
		rates:       make(map[string]decimal.Decimal, len(rates)+1),
	}
	p.rates[BaseCurrency] = decimal.NewFromInt(1)

	for code, raw := range rates {
		rate, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("new carbon pricer: rate for %s: %w", code, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("new carbon pricer: rate for %s must be positive", code)
		}
		p.rates[strings.ToUpper(code)] = rate
	}

	return p, nil
}

// Currency normalises a currency code and reports ErrUnknownCurrency when no
// rate is configured for it. An empty code means BaseCurrency.
func (p *CarbonPricer) Currency(currency string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = BaseCurrency
	}
	if _, ok := p.rates[code]; !ok {
		return "", fmt.Errorf("carbon value: %q: %w", currency, ErrUnknownCurrency)
	}
	return code, nil
}

// Value returns the money value of co2Kg in currency, rounded to cents.
func (p *CarbonPricer) Value(co2Kg float64, currency string) (decimal.Decimal, error) {
	code, err := p.Currency(currency)
	if err != nil {
		return decimal.Zero, err
	}
	rate := p.rates[code]

	tons := decimal.NewFromFloat(co2Kg).Div(decimal.NewFromInt(1000))
	return tons.Mul(p.pricePerTon).Mul(rate).Round(2), nil
}

func (p *CarbonPricer) Currencies() []string {
	out := make([]string, 0, len(p.rates))
	for code := range p.rates {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// PricePerTon returns the configured carbon price in EUR.
func (p *CarbonPricer) PricePerTon() decimal.Decimal { return p.pricePerTon }
