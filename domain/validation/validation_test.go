package validation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateFullName(t *testing.T) {
	assert.True(t, ValidateFullName("Asha Rao"))
	assert.True(t, ValidateFullName("  Asha  "))
	assert.False(t, ValidateFullName(""))
	assert.False(t, ValidateFullName("   "))
	assert.False(t, ValidateFullName("\t\n"))
}

func TestValidateMobile(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		valid  bool
		normal string
	}{
		{"bare ten digits", "9123456789", true, "9123456789"},
		{"leading zero", "09123456789", true, "9123456789"},
		{"country prefix", "+919123456789", true, "9123456789"},
		{"bad leading digit", "5123456789", false, ""},
		{"nine digits", "912345678", false, ""},
		{"eleven digits", "91234567890", false, ""},
		{"letters", "91234abc89", false, ""},
		{"empty", "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidateMobile(tt.input))
			if tt.valid {
				assert.Equal(t, tt.normal, NormalizeMobile(tt.input))
			}
		})
	}
}

func TestNormalizeMobile_StripsAtMostOnePrefix(t *testing.T) {
	// "+91" wins over "0"; only one prefix is ever removed.
	assert.Equal(t, "09123456789", NormalizeMobile("+9109123456789"))
	assert.Equal(t, "9123456789", NormalizeMobile("09123456789"))
}

func TestValidatePAN(t *testing.T) {
	assert.True(t, ValidatePAN("ABCDE1234F"))
	assert.True(t, ValidatePAN("abcde1234f"))
	assert.False(t, ValidatePAN("ABCDE12345"))
	assert.False(t, ValidatePAN("ABCD51234F"))
	assert.False(t, ValidatePAN("ABCDE1234FX"))
	assert.False(t, ValidatePAN(""))
}

func TestNormalizePAN(t *testing.T) {
	assert.Equal(t, "ABCDE1234F", NormalizePAN("abcde1234f"))
}

func TestValidateUUID(t *testing.T) {
	assert.True(t, ValidateUUID(uuid.NewString()))
	assert.True(t, ValidateUUID("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.False(t, ValidateUUID("not-a-uuid"))
	assert.False(t, ValidateUUID(""))
	assert.False(t, ValidateUUID("6ba7b810-9dad-11d1-80b4"))
}
