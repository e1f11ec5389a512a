package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		want     string
	}{
		{"1000", "USD", "$1,000.00"},
		{"-50", "USD", "-$50.00"},
		{"0.125", "USD", "$0.13"},
		{"1500", "JPY", "¥1,500"},
		{"12.5", "XXX-unknown", "12.50"},
	}
	for _, tt := range tests {
		t.Run(tt.currency+" "+tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAmount(decimal.RequireFromString(tt.amount), tt.currency))
		})
	}
}
