package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCTR(t *testing.T) {
	tests := []struct {
		name     string
		clicks   int
		views    int
		expected float64
	}{
		{
			name:     "CTR de 2% com 2 cliques em 100 views",
			clicks:   2,
			views:    100,
			expected: 2.0,
		},
		{
			name:     "Sem views o CTR é zero",
			clicks:   5,
			views:    0,
			expected: 0,
		},
		{
			name:     "CTR fracionário arredondado em duas casas",
			clicks:   1,
			views:    300,
			expected: 0.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateCTR(tt.clicks, tt.views))
		})
	}
}

func TestCalculateECPM(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		views    int
		expected float64
	}{
		{
			name:     "eCPM de 2.00 em mil views com custo 2",
			cost:     2.0,
			views:    1000,
			expected: 2.0,
		},
		{
			name:     "Sem views o eCPM é zero",
			cost:     10.0,
			views:    0,
			expected: 0,
		},
		{
			name:     "eCPM arredondado em duas casas",
			cost:     1.0,
			views:    300,
			expected: 3.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateECPM(tt.cost, tt.views))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -1.23, RoundWithTwoDecimalPlace(-1.2345))
}
