package compare

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeInputs applies the base normalizations that run before any
// strategy: Unicode canonicalization followed by CRLF unification. It never
// fails; an unrecognized normalization form falls back to the identity
// transform rather than aborting the judge.
func normalizeInputs(expected, actual string, cfg Config) (string, string, []string) {
	var labels []string

	if form, ok := normForm(cfg.UnicodeForm); ok {
		expected = form.String(expected)
		actual = form.String(actual)
		labels = append(labels, "unicode_"+strings.ToLower(string(cfg.UnicodeForm)))
	}

	if strings.Contains(expected, "\r\n") || strings.Contains(actual, "\r\n") {
		expected = strings.ReplaceAll(expected, "\r\n", "\n")
		actual = strings.ReplaceAll(actual, "\r\n", "\n")
		labels = append(labels, "crlf_to_lf")
	}

	return expected, actual, labels
}

func normForm(f UnicodeForm) (norm.Form, bool) {
	switch f {
	case UnicodeNFC:
		return norm.NFC, true
	case UnicodeNFD:
		return norm.NFD, true
	case UnicodeNFKC:
		return norm.NFKC, true
	case UnicodeNFKD:
		return norm.NFKD, true
	default:
		return norm.NFC, false
	}
}
