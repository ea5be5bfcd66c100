// Package models defines the payroll records and user accounts kept in the
// local store, together with their validation rules.
package models

import (
	"strings"

	"github.com/dmitrijs2005/paybook/internal/salary"
	"github.com/shopspring/decimal"
)

// Status is the payout state of a record. It only moves pending -> paid.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPaid
}

// ParseStatus accepts "pending" or "paid" in any case.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		v := NewValidator()
		v.Add("status", "must be pending or paid")
		return "", v.Err()
	}
	return st, nil
}

// EmployeeRecord is one employee's pay line for a single month. Insurance and
// Tax are always derived from BaseSalary and Bonus by the salary package.
type EmployeeRecord struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Position   string          `json:"position"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Bonus      decimal.Decimal `json:"bonus"`
	Insurance  decimal.Decimal `json:"insurance"`
	Tax        decimal.Decimal `json:"tax"`
	Month      string          `json:"month"`
	Status     Status          `json:"status"`
}

// NetSalary is base + bonus - insurance - tax, floored at zero.
func (r EmployeeRecord) NetSalary() decimal.Decimal {
	return salary.NetSalary(r.BaseSalary, r.Bonus, r.Insurance, r.Tax)
}

// EmployeeInput is what a user types into the add/edit form. Insurance and
// Tax may be filled by callers but are ignored: they are recomputed.
type EmployeeInput struct {
	Name       string
	Position   string
	Month      string
	BaseSalary decimal.Decimal
	Bonus      decimal.Decimal
	Insurance  decimal.Decimal
	Tax        decimal.Decimal
}

// Normalize trims the text fields in place.
func (in *EmployeeInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Position = strings.TrimSpace(in.Position)
	in.Month = strings.TrimSpace(in.Month)
}

// Validate checks every field and reports all problems at once.
func (in EmployeeInput) Validate() error {
	v := NewValidator()
	v.Length("name", in.Name, NameMinLen, NameMaxLen)
	v.Length("position", in.Position, NameMinLen, NameMaxLen)
	v.Period("month", in.Month)
	v.NonNegative("baseSalary", in.BaseSalary)
	v.NonNegative("bonus", in.Bonus)
	return v.Err()
}

// Apply copies the input onto r and recomputes the derived amounts. ID and
// Status are left untouched.
func (in EmployeeInput) Apply(r *EmployeeRecord) {
	b := salary.Compute(in.BaseSalary, in.Bonus)

	r.Name = in.Name
	r.Position = in.Position
	r.Month = in.Month
	r.BaseSalary = in.BaseSalary
	r.Bonus = in.Bonus
	r.Insurance = b.Insurance
	r.Tax = b.Tax
}

// InputFrom returns the editable part of r, e.g. to prefill an edit form.
func InputFrom(r EmployeeRecord) EmployeeInput {
	return EmployeeInput{
		Name:       r.Name,
		Position:   r.Position,
		Month:      r.Month,
		BaseSalary: r.BaseSalary,
		Bonus:      r.Bonus,
	}
}
