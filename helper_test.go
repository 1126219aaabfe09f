package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a literal.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// tokens is a helper for test to split a row written on a single line.
func tokens(line string) []string { return strings.Fields(line) }

// positionRow and transactionRow are well formed rows used across tests.
const (
	positionRow    = "現股 2330 台積電 1,000 500.5 500,500 600 600,000"
	transactionRow = "2024/03/05 普通賣出 ABC 1000 50.5 50500 80 15"
)
