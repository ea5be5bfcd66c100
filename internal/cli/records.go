package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/paybook/internal/models"
)

var errNoID = errors.New("record id is required")

// recordID takes the id from args or asks for it.
func (a *App) recordID(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errNoID
	}
	return id, nil
}

// List asks for the optional filters and prints the matching records.
// Pressing Enter skips a filter.
func (a *App) List(ctx context.Context, _ []string) error {
	var f models.Filter
	prompts := []struct {
		text string
		dst  *string
	}{
		{"Search name or position (Enter for all)", &f.Query},
		{"Position" + choices(a.records.Positions()) + " (Enter for all)", &f.Position},
		{"Month" + choices(a.records.Months()) + " (Enter for all)", &f.Month},
		{"Status pending/paid (Enter for all)", &f.Status},
	}
	for _, p := range prompts {
		v, err := getSimpleText(a.reader, p.text, a.out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	printRecords(a.out, a.records.List(ctx, f))
	return nil
}

// choices lists the known values of a filter, if any.
func choices(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return " [" + strings.Join(values, ", ") + "]"
}

// readInput fills an EmployeeInput from prompts; cur supplies the defaults.
// A new record has no default base salary.
func (a *App) readInput(cur models.EmployeeInput, isNew bool) (models.EmployeeInput, error) {
	var (
		in  models.EmployeeInput
		err error
	)
	if in.Name, err = GetTextDefault(a.reader, "Name", cur.Name, a.out); err != nil {
		return in, err
	}
	if in.Position, err = GetTextDefault(a.reader, "Position", cur.Position, a.out); err != nil {
		return in, err
	}
	if in.Month, err = GetTextDefault(a.reader, "Month (YYYY-MM)", cur.Month, a.out); err != nil {
		return in, err
	}
	baseDefault := cur.BaseSalary.String()
	if isNew {
		baseDefault = ""
	}
	if in.BaseSalary, err = GetDecimal(a.reader, "Base salary", baseDefault, a.out); err != nil {
		return in, err
	}
	if in.Bonus, err = GetDecimal(a.reader, "Bonus", cur.Bonus.String(), a.out); err != nil {
		return in, err
	}
	return in, nil
}

// Add prompts for a new record. Tax and insurance are computed.
func (a *App) Add(ctx context.Context, _ []string) error {
	in, err := a.readInput(models.EmployeeInput{Month: a.now().Format(models.PeriodLayout)}, true)
	if err != nil {
		return err
	}

	rec, err := a.records.Add(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added %s: net salary %s\n", rec.ID, rec.NetSalary().StringFixed(2))
	printBreakdown(a.out, rec)
	return nil
}

// Edit updates a record; pressing Enter keeps the current value.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.recordID(args, "Enter record id to edit")
	if err != nil {
		return err
	}
	cur, err := a.records.Get(ctx, id)
	if err != nil {
		return err
	}

	in, err := a.readInput(models.InputFrom(cur), false)
	if err != nil {
		return err
	}

	rec, err := a.records.Update(ctx, id, in)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %s: net salary %s\n", rec.ID, rec.NetSalary().StringFixed(2))
	printBreakdown(a.out, rec)
	return nil
}

// Pay marks a record as paid after confirmation.
func (a *App) Pay(ctx context.Context, args []string) error {
	id, err := a.recordID(args, "Enter record id to mark as paid")
	if err != nil {
		return err
	}
	cur, err := a.records.Get(ctx, id)
	if err != nil {
		return err
	}
	if cur.Status == models.StatusPaid {
		fmt.Fprintf(a.out, "%s is already paid\n", cur.Name)
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Mark %s (%s) as paid?", cur.Name, cur.Month), a.out)
	if err != nil || !ok {
		return err
	}

	if _, err := a.records.SetStatus(ctx, id, models.StatusPaid); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s marked as paid\n", cur.Name)
	return nil
}

// Delete removes a record after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.recordID(args, "Enter record id to delete")
	if err != nil {
		return err
	}
	cur, err := a.records.Get(ctx, id)
	if err != nil {
		return err
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s (%s)?", cur.Name, cur.Month), a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.records.Remove(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s\n", cur.Name)
	return nil
}
