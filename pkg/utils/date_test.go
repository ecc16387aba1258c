package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		hasError bool
	}{
		{
			name:     "Data válida deve ser parseada",
			input:    "2026-06-15",
			expected: time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "String vazia retorna data zerada",
			input:    "",
			expected: time.Time{},
		},
		{
			name:     "Formato inválido retorna erro",
			input:    "15/06/2026",
			hasError: true,
		},
		{
			name:     "Data impossível retorna erro",
			input:    "2026-02-30",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2026, 6, 15, 18, 42, 30, 999, time.UTC)
	expected := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, expected, TruncateToDay(input))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Período de uma semana gera sete dias",
			start:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC),
			expected: 7,
		},
		{
			name:     "Mesmo dia gera um único elemento",
			start:    time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 6, 1, 20, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Fim antes do início retorna vazio",
			start:    time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Período atravessa virada de mês",
			start:    time.Date(2026, 5, 30, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := DaysBetween(tt.start, tt.end)
			assert.Len(t, days, tt.expected)

			if tt.expected > 0 {
				assert.Equal(t, TruncateToDay(tt.start), days[0])
				assert.Equal(t, TruncateToDay(tt.end), days[len(days)-1])
			}
		})
	}
}
