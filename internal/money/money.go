// Package money formats integer amounts in minor currency units.
package money

import "strconv"

// Currency decides how amounts are written. A non-empty Symbol is prefixed
// ("$12"); otherwise Code is appended ("480 BDT").
type Currency struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
}

// BDT is the storefront default.
var BDT = Currency{Code: "BDT"}

func (c Currency) Format(amount int64) string {
	n := strconv.FormatInt(amount, 10)
	if c.Symbol != "" {
		if amount < 0 {
			return "-" + c.Symbol + n[1:]
		}
		return c.Symbol + n
	}
	if c.Code == "" {
		return n
	}
	return n + " " + c.Code
}
