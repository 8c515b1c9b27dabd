package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("120000")
	require.NoError(t, err)
	assert.Equal(t, 120000.0, got)

	got, err = ParseAmount(" 99000.5 ")
	require.NoError(t, err)
	assert.Equal(t, 99000.5, got)
}

func TestParseAmount_Empty(t *testing.T) {
	_, err := ParseAmount("")
	assert.ErrorIs(t, err, ErrEmptyAmount)

	_, err = ParseAmount("   ")
	assert.ErrorIs(t, err, ErrEmptyAmount)
}

func TestParseAmount_Garbage(t *testing.T) {
	_, err := ParseAmount("12,000")
	assert.Error(t, err)
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "120", FormatDisplay(120000))
	assert.Equal(t, "99", FormatDisplay(99000))
	assert.Equal(t, "99.5", FormatDisplay(99500))
	assert.Equal(t, "0", FormatDisplay(0))
}
