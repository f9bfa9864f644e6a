package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"autodetect", "autodetect"},
		{"rust", "rust"},
		{"go", "go"},
		{"python", "python"},

		// aliases map to the canonical tag
		{"golang", "go"},
		{"py", "python"},
		{"python3", "python"},
		{"javascript", "js"},
		{"typescript", "ts"},
		{"c++", "cpp"},
		{"c#", "csharp"},
		{"sh", "bash"},
		{"yml", "yaml"},

		// unknown aliases fall back to autodetect
		{"", "autodetect"},
		{"asdf", "autodetect"},
		{"brainfuck", "autodetect"},

		// lookup is case-sensitive
		{"Rust", "autodetect"},
		{"PYTHON", "autodetect"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Resolve(tt.alias), "alias %q", tt.alias)
	}
}
