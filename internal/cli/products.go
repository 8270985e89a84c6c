package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/betterroaming/esim-e2e/internal/catalog"
	"github.com/betterroaming/esim-e2e/internal/database"
	"github.com/betterroaming/esim-e2e/internal/repository"
	"github.com/betterroaming/esim-e2e/internal/validator"
)

// ListProducts fetches the catalog for a currency and writes one line per
// product, in the display form the storefront is expected to render
func ListProducts(ctx context.Context, apiURL, currency string, out io.Writer) error {
	client := catalog.NewClient(apiURL)

	data, err := client.GetProducts(ctx, currency)
	if err != nil {
		return err
	}

	for _, p := range data.Products {
		expected := validator.FormatProductValues(p)
		fmt.Fprintf(out, "%-40s  %s  %10s %s  %-8s  %s\n",
			p.ID, p.Name, expected.Price, p.PriceCurrency, expected.DataPlan, expected.Duration)
	}
	fmt.Fprintf(out, "%d products, %d available countries\n",
		len(data.Products), len(data.AvailableCountries))

	return nil
}

// ListRuns prints the most recent recorded validation runs, newest first
func ListRuns(limit int, out io.Writer) error {
	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close()

	runs, err := repository.NewRunRepository().ListRecentRuns(limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "no recorded runs")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintln(out, run.Summary())
		for _, e := range run.Errors {
			fmt.Fprintf(out, "   %s\n", e)
		}
	}

	return nil
}
