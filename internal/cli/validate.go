package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/betterroaming/esim-e2e/internal/browser"
	"github.com/betterroaming/esim-e2e/internal/catalog"
	"github.com/betterroaming/esim-e2e/internal/config"
	"github.com/betterroaming/esim-e2e/internal/database"
	"github.com/betterroaming/esim-e2e/internal/models"
	"github.com/betterroaming/esim-e2e/internal/pages"
	"github.com/betterroaming/esim-e2e/internal/repository"
	"github.com/betterroaming/esim-e2e/internal/validator"
)

// ValidateOptions holds everything a validation run needs
type ValidateOptions struct {
	Config *config.SuiteConfig
	Record bool
}

// RunValidate executes one full reconciliation run: resolve ground truth
// from the catalog API, drive the storefront to the plan grid, validate the
// grid, and optionally record the outcome. Returns an error when the run
// could not complete or the validation failed.
func RunValidate(ctx context.Context, opts ValidateOptions) error {
	cfg := opts.Config

	products, err := ResolveProducts(ctx, catalog.NewClient(cfg.APIURL), cfg)
	if err != nil {
		return err
	}

	fixture, err := browser.NewFixture()
	if err != nil {
		return err
	}
	defer fixture.Close()

	page, err := fixture.NewPage()
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	defer page.Close()

	home := pages.NewHomePage(page)
	if err := home.Goto(cfg.PageURL); err != nil {
		return err
	}
	if err := home.SelectCurrency(cfg.Currency); err != nil {
		return err
	}
	if err := home.SearchDestination(cfg.Destination); err != nil {
		return err
	}

	gridValidator := validator.NewGridValidator(browser.NewPage(page))
	report, err := gridValidator.ValidateGridItems(products)
	if err != nil {
		return err
	}

	if opts.Record {
		if err := recordRun(cfg, report); err != nil {
			// History is best-effort; the verdict stands either way
			log.Printf("Warning: failed to record validation run: %v", err)
		}
	}

	if !report.Passed {
		return fmt.Errorf("grid validation failed with %d errors", len(report.Errors))
	}

	log.Printf("validation passed: %d grid items matched and verified", report.GridItems)
	return nil
}

// ResolveProducts loads the scenario fixture and fetches the API ground
// truth for each listed product. A fixture/catalog name mismatch is logged
// but the product is still validated; a product missing from the catalog is
// skipped.
func ResolveProducts(ctx context.Context, client *catalog.Client, cfg *config.SuiteConfig) ([]catalog.Product, error) {
	fixtures, err := catalog.LoadFixtureFile(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	fixtureProducts, err := fixtures.ProductsFor(cfg.CountryCode, cfg.Currency)
	if err != nil {
		return nil, err
	}

	var products []catalog.Product
	for _, fp := range fixtureProducts {
		product, err := client.GetProductByID(ctx, cfg.Currency, fp.ID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				log.Printf("Warning: fixture product %s (%s) not in catalog, skipping", fp.ID, fp.Name)
				continue
			}
			return nil, err
		}

		if product.Name != fp.Name {
			log.Printf("Warning: fixture name %q does not match catalog name %q for %s",
				fp.Name, product.Name, fp.ID)
		}

		products = append(products, *product)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("no fixture products for %s/%s resolved from catalog",
			cfg.CountryCode, cfg.Currency)
	}

	return products, nil
}

// recordRun persists the run outcome to the history database
func recordRun(cfg *config.SuiteConfig, report validator.Report) error {
	if err := database.Connect(); err != nil {
		return err
	}
	defer database.Close()

	if err := database.RunMigrations(); err != nil {
		return err
	}

	run, err := models.NewValidationRun(cfg.CountryCode, cfg.Currency, cfg.Destination, cfg.PageURL)
	if err != nil {
		return err
	}
	if err := run.Settle(report.Passed, report.GridItems, report.Errors); err != nil {
		return err
	}

	if err := repository.NewRunRepository().CreateRun(run); err != nil {
		return err
	}

	log.Printf("recorded %s", run.Summary())
	return nil
}
