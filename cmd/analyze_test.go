package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"512", 512},
		{"512B", 512},
		{"100KB", 100 << 10},
		{"100MB", 100 << 20},
		{"2GB", 2 << 30},
		{"2gb", 2 << 30},
		{" 1 GB ", 1 << 30},
	}
	for _, tt := range tests {
		got, err := parseSize(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseSize_Invalid(t *testing.T) {
	for _, in := range []string{"abc", "12.5GB", "GB", "-"} {
		_, err := parseSize(in)
		assert.Error(t, err, in)
	}
}
