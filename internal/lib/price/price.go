// Package price разбирает и форматирует цены, которые витрина хранит строками
// вида "₹25,000".
package price

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency — символ валюты витрины.
const Currency = "₹"

// ErrUnparseable возвращается, если в строке нет числа.
var ErrUnparseable = errors.New("price is not a number")

var printer = message.NewPrinter(language.MustParse("en-IN"))

// decimal — то, что должно остаться от цены после снятия валюты и разделителей.
var decimal = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Parse снимает символ валюты (₹, Rs. или Rs), разделители разрядов и пробелы
// и разбирает остаток как десятичное число. Любой другой текст в строке
// делает цену неразборчивой.
func Parse(display string) (float64, error) {
	const op = "price.Parse"
	cleaned := strings.TrimSpace(display)
	for _, symbol := range []string{Currency, "Rs.", "Rs"} {
		if strings.HasPrefix(cleaned, symbol) {
			cleaned = strings.TrimPrefix(cleaned, symbol)
			break
		}
	}
	cleaned = strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)
	if !decimal.MatchString(cleaned) {
		return 0, fmt.Errorf("%s: %q: %w", op, display, ErrUnparseable)
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q: %w", op, display, ErrUnparseable)
	}
	return v, nil
}

// Format возвращает цену в виде строки для показа, округляя до рупии.
func Format(v float64) string {
	return Currency + printer.Sprintf("%d", int64(math.Round(v)))
}

// Discount возвращает скидку в процентах между текущей и исходной ценой.
// Если одну из цен разобрать нельзя или исходная равна нулю, скидка нулевая.
func Discount(current, original string) int {
	cur, err := Parse(current)
	if err != nil {
		return 0
	}
	orig, err := Parse(original)
	if err != nil || orig == 0 {
		return 0
	}
	return int(math.Round((1 - cur/orig) * 100))
}
