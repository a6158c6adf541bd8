package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Optional query-param parsers. Empty or malformed values mean "no filter".

func ParseOptionalInt(value string) *int {
	if value == "" {
		return nil
	}
	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &result
}

func ParseOptionalBool(value string) *bool {
	if value == "" {
		return nil
	}
	result, err := strconv.ParseBool(value)
	if err != nil {
		return nil
	}
	return &result
}

func ParseOptionalDecimal(value string) *decimal.Decimal {
	if value == "" {
		return nil
	}
	result, err := decimal.NewFromString(value)
	if err != nil {
		return nil
	}
	return &result
}

func ParseOptionalTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	result, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &result
}

// SplitCSV splits a comma-separated query value, trimming blanks.
func SplitCSV(value string) []string {
	if value == "" {
		return nil
	}

	var parts []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
