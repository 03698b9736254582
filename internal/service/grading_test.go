package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestGradeAnswer(t *testing.T) {
	tests := []struct {
		name        string
		correct     *string
		submitted   string
		points      int
		wantCorrect *bool
		wantEarned  decimal.NullDecimal
	}{
		{
			name:        "exact match earns full points",
			correct:     strPtr("4"),
			submitted:   "4",
			points:      10,
			wantCorrect: boolPtr(true),
			wantEarned:  decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
		},
		{
			name:        "surrounding whitespace is ignored",
			correct:     strPtr("4"),
			submitted:   "  4  ",
			points:      10,
			wantCorrect: boolPtr(true),
			wantEarned:  decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
		},
		{
			name:        "case is ignored",
			correct:     strPtr("paris"),
			submitted:   "Paris",
			points:      20,
			wantCorrect: boolPtr(true),
			wantEarned:  decimal.NullDecimal{Decimal: decimal.NewFromInt(20), Valid: true},
		},
		{
			name:        "wrong answer earns zero, not null",
			correct:     strPtr("4"),
			submitted:   "5",
			points:      10,
			wantCorrect: boolPtr(false),
			wantEarned:  decimal.NullDecimal{Decimal: decimal.Zero, Valid: true},
		},
		{
			name:        "no canonical answer stays ungraded",
			correct:     nil,
			submitted:   "func main() {}",
			points:      10,
			wantCorrect: nil,
			wantEarned:  decimal.NullDecimal{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCorrect, gotEarned := GradeAnswer(tt.correct, tt.submitted, tt.points)

			if tt.wantCorrect == nil {
				assert.Nil(t, gotCorrect)
			} else {
				assert.NotNil(t, gotCorrect)
				assert.Equal(t, *tt.wantCorrect, *gotCorrect)
			}

			assert.Equal(t, tt.wantEarned.Valid, gotEarned.Valid)
			if tt.wantEarned.Valid {
				assert.True(t, tt.wantEarned.Decimal.Equal(gotEarned.Decimal),
					"earned = %s, want %s", gotEarned.Decimal, tt.wantEarned.Decimal)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }
