package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	valid := []string{"13812345678", "15900000000", "19999999999"}
	for _, phone := range valid {
		assert.True(t, IsValidPhone(phone), phone)
	}

	invalid := []string{
		"",
		"12812345678",  // second digit must be 3-9
		"23812345678",  // must start with 1
		"1381234567",   // too short
		"138123456789", // too long
		"138-1234-567",
		"abcdefghijk",
	}
	for _, phone := range invalid {
		assert.False(t, IsValidPhone(phone), phone)
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("abc"))
	assert.True(t, IsValidUsername("user_2024"))
	assert.True(t, IsValidUsername("aaaaaaaaaaaaaaaaaaaa")) // 20 chars

	assert.False(t, IsValidUsername(""))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("aaaaaaaaaaaaaaaaaaaaa")) // 21 chars
}

func TestIsValidPassword(t *testing.T) {
	valid := []string{"abc123", "P4ssword!", "x1#y2$z3", "aaaaaaaaaaaaaaaaaa20"}
	for _, pw := range valid {
		assert.True(t, IsValidPassword(pw), pw)
	}

	invalid := []string{
		"",
		"abc12",                 // too short
		"abcdef",                // no digit
		"123456",                // no letter
		"!@#$%^",                // neither
		"abc123abc123abc123abc", // 21 chars
		"abc 123",               // space not allowed
	}
	for _, pw := range invalid {
		assert.False(t, IsValidPassword(pw), pw)
	}
}
