package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// normalizeAnswer strips surrounding whitespace and case so "  Paris "
// matches "paris".
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GradeAnswer applies the all-or-nothing grading rule for one submission.
//
// Questions without a canonical correct answer (coding challenges, open
// free-text) stay ungraded: both results are null. Otherwise the submission
// earns the full point value on a normalized exact match and zero on a miss.
// There is no partial credit.
func GradeAnswer(correctAnswer *string, submitted string, points int) (isCorrect *bool, pointsEarned decimal.NullDecimal) {
	if correctAnswer == nil {
		return nil, decimal.NullDecimal{}
	}

	correct := normalizeAnswer(submitted) == normalizeAnswer(*correctAnswer)
	earned := decimal.Zero
	if correct {
		earned = decimal.NewFromInt(int64(points))
	}
	return &correct, decimal.NullDecimal{Decimal: earned, Valid: true}
}
