package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElfproef(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "valid nine digits", value: "111222333", want: true},
		{name: "sequential digits fail the weighted sum", value: "123456789", want: false},
		{name: "valid with spaces", value: "111 222 333", want: true},
		{name: "valid with dots", value: "111.222.333", want: true},
		{name: "eight digits padded with leading zero", value: "11122233", want: false},
		{name: "too short", value: "1234567", want: false},
		{name: "too long", value: "1112223334", want: false},
		{name: "non-digit characters", value: "11122233a", want: false},
		{name: "empty", value: "", want: false},
		{name: "all zeros pass the raw weighted sum", value: "000000000", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Elfproef(tt.value), "Elfproef(%q)", tt.value)
		})
	}
}
