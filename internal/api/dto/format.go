package dto

import (
	"planet-travel-service/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatNumber renders v with en-US thousands separators and at most three
// fraction digits ("78,341,104", "343,661,223.835").
func FormatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatSpeed renders a speed label such as "299,792 km/s".
func FormatSpeed(s domain.Speed) string {
	return FormatNumber(s.Value) + " " + s.Unit
}
