// Package validation contains pure field validators and normalizers for user
// record fields. None of these touch storage; callers validate first, then
// persist the normalized form.
package validation

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	mobileRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	panRe    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

// ValidateFullName reports whether the name is non-empty after trimming.
func ValidateFullName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// stripMobilePrefix removes a leading "+91" or, failing that, a single
// leading "0". At most one prefix is stripped.
func stripMobilePrefix(mob string) string {
	num := strings.TrimSpace(mob)
	if strings.HasPrefix(num, "+91") {
		return num[3:]
	}
	if strings.HasPrefix(num, "0") {
		return num[1:]
	}
	return num
}

// ValidateMobile reports whether the input, after prefix stripping, is
// exactly 10 digits with the first digit in 6..9.
func ValidateMobile(mob string) bool {
	return mobileRe.MatchString(stripMobilePrefix(mob))
}

// NormalizeMobile returns the bare digit string with the country/trunk
// prefix stripped. It does not validate; call ValidateMobile first.
func NormalizeMobile(mob string) string {
	return stripMobilePrefix(mob)
}

// ValidatePAN reports whether the input matches the PAN format
// (5 letters, 4 digits, 1 letter), case-insensitively.
func ValidatePAN(pan string) bool {
	return panRe.MatchString(strings.ToUpper(pan))
}

// NormalizePAN uppercases the PAN for storage.
func NormalizePAN(pan string) string {
	return strings.ToUpper(pan)
}

// ValidateUUID reports whether the input is a syntactically valid UUID.
// Any RFC 4122 version and variant is accepted.
func ValidateUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
