// Package reports aggregates employee records into the dashboard summary and
// the monthly and per-position totals. Nothing here is persisted; every view
// is recomputed from the current records.
package reports

import (
	"sort"

	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/shopspring/decimal"
)

// Summary is computed over net salaries. All fields are zero for an empty
// record set.
type Summary struct {
	TotalSalary   decimal.Decimal
	AverageSalary decimal.Decimal
	HighestSalary decimal.Decimal
	LowestSalary  decimal.Decimal
	Count         int
}

type PeriodTotal struct {
	Month string
	Total decimal.Decimal
	Count int
}

type PositionTotal struct {
	Position string
	Total    decimal.Decimal
	Count    int
}

// Summarize returns total, average, highest and lowest net salary.
func Summarize(records []models.EmployeeRecord) Summary {
	if len(records) == 0 {
		return Summary{
			TotalSalary:   decimal.Zero,
			AverageSalary: decimal.Zero,
			HighestSalary: decimal.Zero,
			LowestSalary:  decimal.Zero,
		}
	}

	first := records[0].NetSalary()
	s := Summary{
		TotalSalary:   decimal.Zero,
		HighestSalary: first,
		LowestSalary:  first,
		Count:         len(records),
	}
	for _, r := range records {
		net := r.NetSalary()
		s.TotalSalary = s.TotalSalary.Add(net)
		if net.GreaterThan(s.HighestSalary) {
			s.HighestSalary = net
		}
		if net.LessThan(s.LowestSalary) {
			s.LowestSalary = net
		}
	}
	s.AverageSalary = s.TotalSalary.Div(decimal.NewFromInt(int64(len(records))))
	return s
}

// ByMonth sums net salary per pay period, ascending by period.
func ByMonth(records []models.EmployeeRecord) []PeriodTotal {
	idx := make(map[string]int)
	out := make([]PeriodTotal, 0)
	for _, r := range records {
		i, ok := idx[r.Month]
		if !ok {
			i = len(out)
			idx[r.Month] = i
			out = append(out, PeriodTotal{Month: r.Month, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(r.NetSalary())
		out[i].Count++
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// ByPosition sums net salary per position. Groups are returned in the order
// their position first appears in records.
func ByPosition(records []models.EmployeeRecord) []PositionTotal {
	idx := make(map[string]int)
	out := make([]PositionTotal, 0)
	for _, r := range records {
		i, ok := idx[r.Position]
		if !ok {
			i = len(out)
			idx[r.Position] = i
			out = append(out, PositionTotal{Position: r.Position, Total: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(r.NetSalary())
		out[i].Count++
	}
	return out
}

// StatusCounts returns how many records are pending and how many are paid.
func StatusCounts(records []models.EmployeeRecord) (pending, paid int) {
	for _, r := range records {
		switch r.Status {
		case models.StatusPaid:
			paid++
		default:
			pending++
		}
	}
	return pending, paid
}
