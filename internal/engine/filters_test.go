package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFilter(t *testing.T) {
	paths := []string{"app/.env", "vendor/lib/key.pem", "docs/readme.md", "main.go"}

	cases := []struct {
		name             string
		include, exclude string
		want             []string
	}{
		{"no globs", "", "", paths},
		{"exclude dir", "", "vendor/**", []string{"app/.env", "docs/readme.md", "main.go"}},
		{"exclude basename", "", "*.md", []string{"app/.env", "vendor/lib/key.pem", "main.go"}},
		{"include only", "**/*.pem, *.go", "", []string{"vendor/lib/key.pem", "main.go"}},
		{"include then exclude", "**/*", "./**/*.go", []string{"app/.env", "vendor/lib/key.pem", "docs/readme.md"}},
		{"blank entries", " , ,", "", paths},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := newPathFilter(tc.include, tc.exclude)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.apply(paths))
		})
	}
}

func TestPathFilter_InvalidGlob(t *testing.T) {
	_, err := newPathFilter("", "[abc")
	var uerr *UsageError
	require.True(t, errors.As(err, &uerr))
	assert.Contains(t, uerr.Error(), "[abc")
}

func TestTrimGlobPrefix(t *testing.T) {
	assert.Equal(t, "*.go", trimGlobPrefix("./**/**/*.go"))
	assert.Equal(t, "vendor/**", trimGlobPrefix("vendor/**"))
}
