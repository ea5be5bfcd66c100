package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/dmitrijs2005/paybook/internal/reports"
)

const tableWidth = 126

func rule(w io.Writer, c string) {
	fmt.Fprintln(w, strings.Repeat(c, tableWidth))
}

func printRecords(w io.Writer, records []models.EmployeeRecord) {
	fmt.Fprintln(w)
	rule(w, "=")
	fmt.Fprintf(w, "  EMPLOYEES (%d)\n", len(records))
	rule(w, "=")
	if len(records) == 0 {
		fmt.Fprintln(w, "  No records found.")
		rule(w, "=")
		return
	}
	fmt.Fprintf(w, "  %-36s %-16s %-14s %-7s %11s %9s %9s %9s %11s  %s\n",
		"ID", "NAME", "POSITION", "MONTH", "BASE", "BONUS", "INSUR.", "TAX", "NET", "STATUS")
	rule(w, "-")
	for _, r := range records {
		fmt.Fprintf(w, "  %-36s %-16s %-14s %-7s %11s %9s %9s %9s %11s  %s\n",
			r.ID, clip(r.Name, 16), clip(r.Position, 14), r.Month,
			r.BaseSalary.StringFixed(2), r.Bonus.StringFixed(2),
			r.Insurance.StringFixed(2), r.Tax.StringFixed(2),
			r.NetSalary().StringFixed(2), r.Status)
	}
	rule(w, "=")
}

// clip shortens s to n runes, marking the cut with "~".
func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "~"
}

func printBreakdown(w io.Writer, r models.EmployeeRecord) {
	fmt.Fprintf(w, "  base %s + bonus %s - insurance %s - tax %s = %s\n",
		r.BaseSalary.StringFixed(2), r.Bonus.StringFixed(2),
		r.Insurance.StringFixed(2), r.Tax.StringFixed(2), r.NetSalary().StringFixed(2))
}

func printSummary(w io.Writer, s reports.Summary, pending, paid int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "  SALARY SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "  %-20s %25d\n", "Employees", s.Count)
	fmt.Fprintf(w, "  %-20s %25d\n", "Pending", pending)
	fmt.Fprintf(w, "  %-20s %25d\n", "Paid", paid)
	fmt.Fprintf(w, "  %-20s %25s\n", "Total net salary", s.TotalSalary.StringFixed(2))
	fmt.Fprintf(w, "  %-20s %25s\n", "Average", s.AverageSalary.StringFixed(2))
	fmt.Fprintf(w, "  %-20s %25s\n", "Highest", s.HighestSalary.StringFixed(2))
	fmt.Fprintf(w, "  %-20s %25s\n", "Lowest", s.LowestSalary.StringFixed(2))
	fmt.Fprintln(w, strings.Repeat("=", 50))
}

func printPeriods(w io.Writer, totals []reports.PeriodTotal) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  NET SALARY BY MONTH")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	if len(totals) == 0 {
		fmt.Fprintln(w, "  No data.")
		return
	}
	fmt.Fprintf(w, "  %-10s %8s %28s\n", "MONTH", "COUNT", "TOTAL")
	for _, t := range totals {
		fmt.Fprintf(w, "  %-10s %8d %28s\n", t.Month, t.Count, t.Total.StringFixed(2))
	}
}

func printPositions(w io.Writer, totals []reports.PositionTotal) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  NET SALARY BY POSITION")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	if len(totals) == 0 {
		fmt.Fprintln(w, "  No data.")
		return
	}
	fmt.Fprintf(w, "  %-20s %8s %18s\n", "POSITION", "COUNT", "TOTAL")
	for _, t := range totals {
		fmt.Fprintf(w, "  %-20s %8d %18s\n", clip(t.Position, 20), t.Count, t.Total.StringFixed(2))
	}
}
