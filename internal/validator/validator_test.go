package validator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	valid := []string{"a@b.com", "user.name@example.co.uk", "x+tag@sub.domain.io"}
	for _, e := range valid {
		assert.True(t, Email(e), e)
	}
	invalid := []string{"", "plain", "no@dot", "two words@x.com", "@x.com", "a@.com "}
	for _, e := range invalid {
		assert.False(t, Email(e), e)
	}
}

func TestPassword(t *testing.T) {
	require.NoError(t, Password("abc12345"))
	require.NoError(t, Password("longenough1"))

	assert.Error(t, Password("ab1"), "too short")
	assert.Error(t, Password("short1a"), "7 chars")
	assert.Error(t, Password("12345678"), "digits only")
	assert.Error(t, Password("abcdefgh"), "letters only")
}

func TestAmount(t *testing.T) {
	assert.NoError(t, Amount(0))
	assert.NoError(t, Amount(50.25))
	assert.Error(t, Amount(-1))
	assert.Error(t, Amount(math.NaN()))
	assert.Error(t, Amount(math.Inf(1)))
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("2024-01-05"))
	assert.NoError(t, Date("2024-01-05T10:30:00Z"))
	assert.NoError(t, Date("2024-01-05T10:30:00.123Z"))
	assert.Error(t, Date("not a date"))
	assert.Error(t, Date("05/01/2024"))
	assert.Error(t, Date(""))
}

func TestCategory(t *testing.T) {
	assert.NoError(t, Category("groceries"))
	assert.Error(t, Category(""))
	assert.Error(t, Category("   "))
}
