package domain

import "regexp"

// Card input formats. Expiry month and year are matched as raw strings before
// numeric parsing, so leading/trailing whitespace fails the format check.
var (
	cardNumberPattern  = regexp.MustCompile(`^\d{14,19}$`)
	cvvPattern         = regexp.MustCompile(`^\d{3,4}$`)
	expiryMonthPattern = regexp.MustCompile(`^(0?[1-9]|1[0-2])$`)
	expiryYearPattern  = regexp.MustCompile(`^(\d{2}|\d{4})$`)
)
