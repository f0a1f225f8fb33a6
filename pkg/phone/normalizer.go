package phone

import "strings"

// Defaults cover Sri Lankan numbering: country code 94, domestic trunk
// prefix 0, mobile subscriber numbers starting with 7 once the trunk prefix
// has been stripped.
const (
	DefaultCountryCode  = "94"
	DefaultTrunkPrefix  = "0"
	DefaultMobilePrefix = "7"
)

// Normalizer converts heterogeneous phone number strings into the single
// canonical format "<countrycode><subscribernumber>".
type Normalizer struct {
	CountryCode  string
	TrunkPrefix  string
	MobilePrefix string
}

// NewNormalizer returns a normalizer configured for Sri Lankan numbers.
func NewNormalizer() Normalizer {
	return Normalizer{
		CountryCode:  DefaultCountryCode,
		TrunkPrefix:  DefaultTrunkPrefix,
		MobilePrefix: DefaultMobilePrefix,
	}
}

// Normalize strips every non-digit character and applies the first matching
// rule, in order:
//
//  1. Already starts with the country code: returned unchanged, which makes
//     normalization idempotent.
//  2. Starts with the trunk prefix ("0771234567"): the single leading zero is
//     dropped and the country code prepended.
//  3. Starts with the mobile prefix ("771234567"): the trunk prefix was
//     already stripped, so the country code is prepended directly.
//  4. Anything else: the country code is prepended as a best-effort fallback
//     and the gateway's own validation decides.
//
// The output always starts with the country code and contains only digits.
func (n Normalizer) Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case strings.HasPrefix(digits, n.CountryCode):
		return digits
	case strings.HasPrefix(digits, n.TrunkPrefix):
		return n.CountryCode + digits[len(n.TrunkPrefix):]
	case strings.HasPrefix(digits, n.MobilePrefix):
		return n.CountryCode + digits
	default:
		return n.CountryCode + digits
	}
}

// Normalize applies the default Sri Lankan normalizer to raw.
func Normalize(raw string) string {
	return NewNormalizer().Normalize(raw)
}
