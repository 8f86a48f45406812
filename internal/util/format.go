package util

import (
	"fmt"
	"time"
)

const thousandValue = 1000

// FormatMoney renders a whole-unit amount in Colombian peso style:
// dot as the grouping separator, no decimals, e.g. 1000000 -> "$ 1.000.000".
func FormatMoney(value int64) string {
	var result string
	var isNegative bool

	if value < 0 {
		value *= -1
		isNegative = true
	}

	// for each 3 digits put a dot "."
	for value >= thousandValue {
		result = fmt.Sprintf(".%03d%s", value%thousandValue, result)
		value /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-$ %d%s", value, result)
	}

	return fmt.Sprintf("$ %d%s", value, result)
}

// FormatDateTime renders an epoch-milliseconds timestamp as
// "dd/MM/yyyy - HH:mm:ss" in local time.
func FormatDateTime(millis int64) string {
	return time.UnixMilli(millis).Format("02/01/2006 - 15:04:05")
}
