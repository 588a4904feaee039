package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureCodeGeneratorFormat(t *testing.T) {
	gen := SecureCodeGenerator{}
	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	code, err := gen.Generate(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^CERT-20250314-[A-Z0-9]{12}$`), code)
}

func TestSecureCodeGeneratorUsesUTCDate(t *testing.T) {
	gen := SecureCodeGenerator{}
	// 东八区的 3月15日 02:00 是 UTC 的 3月14日 18:00
	loc := time.FixedZone("UTC+8", 8*3600)
	now := time.Date(2025, 3, 15, 2, 0, 0, 0, loc)

	code, err := gen.Generate(now)
	require.NoError(t, err)

	assert.Contains(t, code, "-20250314-")
}

func TestSecureCodeGeneratorRandomness(t *testing.T) {
	gen := SecureCodeGenerator{}
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := gen.Generate(now)
		require.NoError(t, err)
		assert.False(t, seen[code], "generated duplicate code %s", code)
		seen[code] = true
	}
}
