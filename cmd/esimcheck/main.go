package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/betterroaming/esim-e2e/internal/cli"
	"github.com/betterroaming/esim-e2e/internal/config"
)

var version = "0.1.0"

// ValidateCommand returns the validate command
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Run the storefront grid validation against the catalog API",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "record",
				Usage: "Record the run outcome in the history database",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("missing required scenario configuration: %w", err)
			}

			return internalcli.RunValidate(c.Context, internalcli.ValidateOptions{
				Config: cfg,
				Record: c.Bool("record"),
			})
		},
	}
}

// ProductsCommand returns the products command
func ProductsCommand() *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "Fetch and print the catalog products for a currency",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "currency",
				Value:   config.DefaultCurrency,
				Usage:   "Currency code to price products in",
				EnvVars: []string{"CURRENCY"},
			},
			&cli.StringFlag{
				Name:    "api-url",
				Usage:   "Catalog API base URL",
				EnvVars: []string{"API_URL"},
			},
		},
		Action: func(c *cli.Context) error {
			apiURL := c.String("api-url")
			if apiURL == "" {
				return fmt.Errorf("API_URL is required")
			}

			return internalcli.ListProducts(c.Context, apiURL, c.String("currency"), os.Stdout)
		},
	}
}

// RunsCommand returns the runs command
func RunsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "Print recent recorded validation runs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "Maximum number of runs to print",
			},
		},
		Action: func(c *cli.Context) error {
			return internalcli.ListRuns(c.Int("limit"), os.Stdout)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "esimcheck",
		Usage:   "eSIM storefront validation tool",
		Version: version,
		Commands: []*cli.Command{
			ValidateCommand(),
			ProductsCommand(),
			RunsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
