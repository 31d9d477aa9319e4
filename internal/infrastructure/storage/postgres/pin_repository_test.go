package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain term untouched", input: "blood panel", want: "blood panel"},
		{name: "percent is literal", input: "100%", want: `100\%`},
		{name: "underscore is literal", input: "lab_report", want: `lab\_report`},
		{name: "backslash is literal", input: `a\b`, want: `a\\b`},
		{name: "mixed", input: `50%_\done`, want: `50\%\_\\done`},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLikePattern(tt.input))
		})
	}
}
