package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("CCSED_TEST_STRING", "  https://api.dataweb.tech ")
	t.Setenv("CCSED_TEST_BLANK", "   ")

	assert.Equal(t, "https://api.dataweb.tech", GetEnvString("CCSED_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("CCSED_TEST_BLANK", "fallback"))
	assert.Equal(t, "fallback", GetEnvString("CCSED_TEST_UNSET", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CCSED_TEST_INT", "25")
	t.Setenv("CCSED_TEST_BAD_INT", "twenty")

	assert.Equal(t, 25, GetEnvInt("CCSED_TEST_INT", 5))
	assert.Equal(t, 5, GetEnvInt("CCSED_TEST_BAD_INT", 5))
	assert.Equal(t, 5, GetEnvInt("CCSED_TEST_UNSET", 5))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("CCSED_TEST_BOOL", "true")
	t.Setenv("CCSED_TEST_BAD_BOOL", "yes please")

	assert.True(t, GetEnvBool("CCSED_TEST_BOOL", false))
	assert.False(t, GetEnvBool("CCSED_TEST_BAD_BOOL", false))
	assert.True(t, GetEnvBool("CCSED_TEST_UNSET", true))
}
