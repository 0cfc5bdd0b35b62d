package naija

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// CurrencyCode is the ISO 4217 code of the naira.
	CurrencyCode = "NGN"
	// CurrencyName is the English name of the naira.
	CurrencyName = "Nigerian naira"
	// CurrencySymbol is the naira sign.
	CurrencySymbol = "₦"
)

// pricePrinter groups amounts with comma thousands separators, the way
// naira prices are written.
var pricePrinter = message.NewPrinter(language.English)

// Currency returns the naira's ISO code and English name.
func (g *Generator) Currency() (code, name string) {
	return CurrencyCode, CurrencyName
}

// PriceTag formats amount as a naira price, e.g. ₦1,250,000.50.
func (g *Generator) PriceTag(amount float64) string {
	return CurrencySymbol + pricePrinter.Sprintf("%.2f", amount)
}

// Amount returns a uniformly random amount in [min, max).
func (g *Generator) Amount(min, max float64) (float64, error) {
	if min > max {
		return 0, errors.Join(ErrInvalidArgument, fmt.Errorf("min %v exceeds max %v", min, max))
	}
	return min + g.rnd.Float64()*(max-min), nil
}

// RandomPriceTag returns a formatted price between one naira and one
// hundred thousand. Three in ten amounts are rounded to the nearest
// hundred, and half keep their kobo part while the rest close with .00.
func (g *Generator) RandomPriceTag() string {
	amount := 1 + g.rnd.Float64()*(100000-1)
	if g.chance(0.3) {
		amount = math.Round(amount/100) * 100
	}
	tag := g.PriceTag(amount)
	if !g.chance(0.5) {
		if i := strings.LastIndex(tag, "."); i >= 0 {
			tag = tag[:i] + ".00"
		}
	}
	return tag
}
