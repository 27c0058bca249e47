package rut

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid_KnownPairs(t *testing.T) {
	valid := []string{
		"12345678-5",
		"12.345.678-5",
		"123456785", // no dash, check char assumed last
		"11111111-1",
		"11.111.111-1",
		"7654321-6",
		"12345670-K",
		"12345670-k", // check letter is case-insensitive
		"12.345.670-K",
	}
	for _, s := range valid {
		assert.True(t, Valid(s), "expected %q to be valid", s)
	}

	invalid := []string{
		"",
		"   ",
		"1",
		"12345678-4", // wrong check digit
		"12345678-K",
		"12345670-0",
		"abc",
		"12.345.678", // last digit taken as check char, which then fails
		"1234-5",     // body too short for the national format
	}
	for _, s := range invalid {
		assert.False(t, Valid(s), "expected %q to be invalid", s)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.345.678-9", Format("123456789"))
	assert.Equal(t, "12.345.678-9", Format("12345678-9"))
	assert.Equal(t, "12.345.678-9", Format("12.345.678-9"))
	assert.Equal(t, "1.234.567-8", Format("12345678"))
	assert.Equal(t, "12.345.670-K", Format("12345670k"))
	assert.Equal(t, "", Format(""))
	assert.Equal(t, "", Format("   "))
	// Too short to split into body and check character: returned unchanged.
	assert.Equal(t, "5", Format("5"))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "12345678-9", Clean("12.345.678-9"))
	assert.Equal(t, "12345678-9", Clean("123456789"))
	assert.Equal(t, "12345670-K", Clean("12.345.670-k"))
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "K", Clean("k"))
	// Misplaced dashes are stripped and the separator re-inserted.
	assert.Equal(t, "123-4", Clean("12-34"))
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{"12.345.678-9", "123456789", "12345670k", "", "k", "1-2-3"}
	for _, s := range inputs {
		once := Clean(s)
		assert.Equal(t, once, Clean(once), "Clean not idempotent for %q", s)
	}
}

func TestValid_AfterCleanAndFormat(t *testing.T) {
	// Valid against the clean and formatted renditions of known-good RUTs.
	for _, s := range []string{"123456785", "11111111-1", "12345670K"} {
		require.True(t, Valid(s))
		assert.True(t, Valid(Clean(s)))
		assert.True(t, Valid(Format(Clean(s))))
	}
}
