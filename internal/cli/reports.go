package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/paybook/internal/export"
	"github.com/dmitrijs2005/paybook/internal/models"
	"github.com/dmitrijs2005/paybook/internal/reports"
)

func (a *App) all(ctx context.Context) []models.EmployeeRecord {
	return a.records.List(ctx, models.Filter{})
}

// Report prints the dashboard: summary, status counts and both breakdowns.
func (a *App) Report(ctx context.Context, _ []string) error {
	records := a.all(ctx)
	pending, paid := reports.StatusCounts(records)

	printSummary(a.out, reports.Summarize(records), pending, paid)
	printPeriods(a.out, reports.ByMonth(records))
	printPositions(a.out, reports.ByPosition(records))
	return nil
}

func (a *App) Months(ctx context.Context, _ []string) error {
	printPeriods(a.out, reports.ByMonth(a.all(ctx)))
	return nil
}

func (a *App) Positions(ctx context.Context, _ []string) error {
	printPositions(a.out, reports.ByPosition(a.all(ctx)))
	return nil
}

// Export writes every record to a dated file in the configured export dir.
// The format comes from the first argument and defaults to xlsx.
func (a *App) Export(ctx context.Context, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	records := a.all(ctx)
	path, err := export.ToFile(a.config.ExportDir, f, records, a.now())
	if err != nil {
		return err
	}

	a.log.Info(ctx, "report exported", "path", path, "records", len(records))
	fmt.Fprintf(a.out, "Exported %d records to %s\n", len(records), path)
	return nil
}
