package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency is appended to every formatted price.
const Currency = "so'm"

// FormatAmount groups an integer amount by thousands with spaces.
func FormatAmount(amount int64) string {
	neg := amount < 0
	digits := strconv.FormatInt(amount, 10)
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(' ')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatPrice renders an amount as "1 250 000 so'm".
func FormatPrice(amount int64) string {
	return FormatAmount(amount) + " " + Currency
}

// FormatDecimalPrice formats a fractional amount, rounded to whole units.
func FormatDecimalPrice(amount decimal.Decimal) string {
	return FormatPrice(amount.Round(0).IntPart())
}

// FormatDate renders DD.MM.YYYY, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

// FormatDateTime renders DD.MM.YYYY HH:MM.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006 15:04")
}

// FormatPercent renders a signed change with one decimal: "+12.5%", "-3.0%".
func FormatPercent(change decimal.Decimal) string {
	s := change.StringFixed(1)
	if change.Round(1).IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

// Trend classifies a percentage change.
func Trend(change decimal.Decimal) string {
	switch change.Sign() {
	case 1:
		return "up"
	case -1:
		return "down"
	default:
		return "flat"
	}
}

// FormatPhone prefixes a national number with the country code.
func FormatPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+998 " + phone
}
