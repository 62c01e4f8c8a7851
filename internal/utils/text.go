package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeEmail trims s and folds its case so that addresses differing
// only by letter case compare equal.
func NormalizeEmail(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
