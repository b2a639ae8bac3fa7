package locator

import "strings"

// PostalCode is a validated, digits-only 8-character Brazilian CEP.
// Construct one through ParsePostalCode.
type PostalCode string

// ParsePostalCode validates and normalizes a raw postal code string.
// All non-digit characters are stripped before validation, so both
// "88080-080" and "88080080" normalize to "88080080".
func ParsePostalCode(raw string) (PostalCode, error) {
	if strings.TrimSpace(raw) == "" {
		return "", E("", KindEmpty, "postal code is required")
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) != 8 {
		return "", E("", KindInvalidFormat, "postal code must have exactly 8 digits: "+raw)
	}
	return PostalCode(digits), nil
}

// String returns the digits-only form.
func (p PostalCode) String() string {
	return string(p)
}

// Masked returns the display form "#####-###" used by carrier payloads.
func (p PostalCode) Masked() string {
	if len(p) != 8 {
		return string(p)
	}
	return string(p[:5]) + "-" + string(p[5:])
}
