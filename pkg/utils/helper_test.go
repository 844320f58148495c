package utils_test

import (
	"testing"

	"moviehub/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYear(t *testing.T) {
	year := utils.ParseYear("2014")
	require.NotNil(t, year)
	assert.Equal(t, 2014, *year)
}

func TestParseYear_Invalid(t *testing.T) {
	for _, value := range []string{"", "abc", "20x4", "1500", "5000"} {
		assert.Nil(t, utils.ParseYear(value), "value %q", value)
	}
}
