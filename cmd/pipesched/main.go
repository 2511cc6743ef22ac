package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/vsinha/pipesched/pkg/interfaces/cli/commands"
)

func main() {
	// Optional .env with PIPESCHED_* defaults
	if err := loadEnv(); err != nil {
		log.Printf("env: %v", err)
	}

	ctx := context.Background()

	if len(os.Args) > 1 && os.Args[1] == "generate" {
		if err := runGenerate(ctx, os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Command line flags
	var (
		ordersFile       = flag.String("orders", "", "Path to order table CSV")
		shippingPlanFile = flag.String("shipping-plan", "", "Path to shipping plan CSV (optional)")
		catalogueFile    = flag.String("catalogue", os.Getenv("PIPESCHED_CATALOGUE"), "Path to machine/mold catalogue YAML")
		strategy         = flag.String("strategy", envOr("PIPESCHED_STRATEGY", "capacity-first"), "Scheduling strategy")
		respectDeadlines = flag.Bool("respect-deadlines", false, "Reject placements that end after delivery (time-first)")
		date             = flag.String("date", "", "Reference date (default: today)")
		format           = flag.String("format", envOr("PIPESCHED_FORMAT", "text"), "Output format: text, json, csv")
		outputDir        = flag.String("output", "", "Output directory for results (optional)")
		writeCatalogue   = flag.String("write-catalogue", "", "Write the active catalogue to this YAML file")
		verbose          = flag.Bool("verbose", false, "Enable verbose output")
		help             = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		OrdersFile:       *ordersFile,
		ShippingPlanFile: *shippingPlanFile,
		CatalogueFile:    *catalogueFile,
		Strategy:         *strategy,
		Date:             *date,
		Format:           *format,
		OutputDir:        *outputDir,
		WriteCatalogue:   *writeCatalogue,
		Verbose:          *verbose,
		Help:             *help,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "respect-deadlines" {
			config.RespectDeadlines = respectDeadlines
		}
	})

	cmd := commands.NewScheduleCommand(config)
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var (
		orders    = fs.Int("orders", 50, "Number of orders to generate")
		shipping  = fs.Float64("shipping", 0.2, "Fraction of orders listed in the shipping plan")
		date      = fs.String("date", "", "Reference date (default: today)")
		outputDir = fs.String("output", "", "Output directory")
		seed      = fs.Int64("seed", 0, "Random seed (default: time based)")
		verbose   = fs.Bool("verbose", false, "Enable verbose output")
		help      = fs.Bool("help", false, "Show help message")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	return commands.NewGenerateCommand(commands.GenerateConfig{
		Orders:        *orders,
		ShippingShare: *shipping,
		StartDate:     *date,
		OutputDir:     *outputDir,
		Seed:          *seed,
		Help:          *help,
		Verbose:       *verbose,
	}).Execute(ctx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// loadEnv reads .env files into the environment. A missing file is not an
// error.
func loadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}
