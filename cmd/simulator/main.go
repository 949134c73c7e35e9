// Command simulator imputes missing values in a CSV dataset and optionally
// extends its date column with synthetic rows up to a target date.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pivolan/sales_analyzer/analytics"
	"github.com/pivolan/sales_analyzer/simulate"
	"github.com/pivolan/sales_analyzer/table"
)

func main() {
	input := flag.String("input", "", "input CSV path (required)")
	output := flag.String("output", "", "output CSV path (required)")
	dateColumn := flag.String("date-column", "", "date column to extend with synthetic rows")
	endDate := flag.String("end-date", "", "extension end date, YYYY-MM-DD (default: today)")
	summary := flag.Bool("summary", false, "print a per-column type summary")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "both -input and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*input, *output, *dateColumn, *endDate, *summary); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(input, output, dateColumn, endDate string, summary bool) error {
	t, err := table.ReadFile(input)
	if err != nil {
		return err
	}
	sim := simulate.New(t)

	var end time.Time
	if endDate != "" {
		end, err = time.Parse("2006-01-02", endDate)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %v", endDate, err)
		}
	}

	if dateColumn != "" {
		if !t.HasColumn(dateColumn) {
			return fmt.Errorf("date column %q not found in %s", dateColumn, input)
		}
		sim.SetType(dateColumn, table.Datetime)
		if err := sim.FillMissing(dateColumn, simulate.Options{
			Strategy: "generate_range",
			EndDate:  end,
			Freq:     "D",
		}); err != nil {
			return err
		}
		if err := sim.AutoImputeAll([]string{dateColumn}, nil); err != nil {
			return err
		}
	} else {
		if err := sim.AutoImputeAll(nil, nil); err != nil {
			return err
		}
	}

	if err := table.WriteFile(output, sim.Table); err != nil {
		return err
	}
	fmt.Printf("CSV written to: %s\n", output)
	for _, entry := range sim.Log() {
		fmt.Println(entry)
	}
	if summary {
		fmt.Println(analytics.GenerateColumnSummary(sim.Table, sim.Types))
	}
	return nil
}
