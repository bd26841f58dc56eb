package gstin_test

import (
	"testing"

	"github.com/SscSPs/invoice_normalizer_app/internal/utils/gstin"
	"github.com/stretchr/testify/assert"
)

func TestVerify_KnownValid(t *testing.T) {
	assert.True(t, gstin.Verify("27AAPFU0939F1ZV"))
}

func TestVerify_CaseInsensitive(t *testing.T) {
	assert.True(t, gstin.Verify("27aapfu0939f1zv"))
	assert.True(t, gstin.Verify("27AaPfU0939f1Zv"))
}

func TestVerify_WrongLength(t *testing.T) {
	assert.False(t, gstin.Verify(""))
	assert.False(t, gstin.Verify("27AAPFU0939F1Z"))   // 14 chars
	assert.False(t, gstin.Verify("27AAPFU0939F1ZVV")) // 16 chars
}

func TestVerify_OnlyOneChecksumCharacterIsValid(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	base := "27AAPFU0939F1Z"

	for i := 0; i < len(alphabet); i++ {
		candidate := base + string(alphabet[i])
		want := alphabet[i] == 'V'
		assert.Equal(t, want, gstin.Verify(candidate), "checksum char %c", alphabet[i])
	}
}

func TestVerify_StructuralRejections(t *testing.T) {
	cases := map[string]string{
		"00AAPFU0939F1ZV": "state code below range",
		"38AAPFU0939F1ZV": "state code above range",
		"2AAAPFU0939F1ZV": "non-digit state code",
		"27AAP4U0939F1ZV": "digit inside PAN letter block",
		"27AAPFUA939F1ZV": "letter inside PAN digit block",
		"27AAPFU09393 ZV": "space instead of entity letter",
		"27AAPFU0939F1XV": "14th character not Z",
	}

	for input, reason := range cases {
		assert.False(t, gstin.Verify(input), reason)
	}
}

func TestVerify_ChecksumMismatch(t *testing.T) {
	// Structurally fine, checksum character off by one.
	assert.False(t, gstin.Verify("27AAPFU0939F1ZW"))
}
