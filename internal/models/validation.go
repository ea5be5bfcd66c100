package models

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/paybook/internal/common"
	"github.com/shopspring/decimal"
)

const (
	NameMinLen = 2
	NameMaxLen = 50

	// PeriodLayout is the time layout of a "YYYY-MM" pay period.
	PeriodLayout = "2006-01"
)

// FieldIssue describes one invalid field.
type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError lists every invalid field of an input. It matches
// common.ErrValidation with errors.Is.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		parts = append(parts, is.Field+" "+is.Reason)
	}
	return fmt.Sprintf("%s: %s", common.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

// Validator collects field issues.
type Validator struct {
	issues []FieldIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]FieldIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	v.issues = append(v.issues, FieldIssue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

// Length checks the rune count of value.
func (v *Validator) Length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		v.Add(field, fmt.Sprintf("must be %d-%d characters", min, max))
	}
}

func (v *Validator) Period(field, value string) {
	if _, err := time.Parse(PeriodLayout, value); err != nil {
		v.Add(field, "must be a period in YYYY-MM format")
	}
}

func (v *Validator) NonNegative(field string, value decimal.Decimal) {
	if value.IsNegative() {
		v.Add(field, "must not be negative")
	}
}

// Err returns nil when nothing was collected, otherwise a *ValidationError
// with issues sorted by field.
func (v *Validator) Err() error {
	if len(v.issues) == 0 {
		return nil
	}
	out := make([]FieldIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return &ValidationError{Issues: out}
}
