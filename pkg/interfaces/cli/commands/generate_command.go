package commands

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/specparser"
	"github.com/vsinha/pipesched/pkg/infrastructure/config"
	"github.com/vsinha/pipesched/pkg/infrastructure/table"
)

// GenerateConfig holds configuration for sample data generation
type GenerateConfig struct {
	Orders        int     // Number of order rows to generate
	ShippingShare float64 // Fraction of orders that also appear in the shipping plan
	StartDate     string  // First possible delivery date is 7 days after this
	OutputDir     string  // Output directory for generated files
	Seed          int64   // Random seed for reproducible generation
	Help          bool
	Verbose       bool
}

// GenerateCommand writes a random order table and shipping plan whose
// diameters come from the built-in catalogue
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
	specs  []entities.PipeSpecification
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(cfg GenerateConfig) *GenerateCommand {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var specs []entities.PipeSpecification
	for _, rule := range config.DefaultCatalogue().Rules {
		specs = append(specs, specparser.Parse(rule.Specification)...)
	}

	return &GenerateCommand{
		config: cfg,
		rand:   rand.New(rand.NewSource(seed)),
		specs:  specs,
	}
}

var orderHeader = []string{
	"order_number", "inner_diameter", "outer_diameter", "quantity", "segments", "daily_rate",
	"shipped_qty", "stock_qty", "stock_arrival_date", "preprocessed_qty", "delivery_date", "notes",
}

var shippingHeader = []string{
	"order_number", "contract_number", "customer_name", "salesperson", "delivery_date",
}

var (
	customers    = []string{"Northfield Water", "Harbor Utilities", "Eastline Gas", "Riverbend Works"}
	salespersons = []string{"Chen", "Okafor", "Lindqvist", "Morales"}
)

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}
	if cmd.config.Orders <= 0 {
		return fmt.Errorf("validation error: -orders must be positive")
	}
	if cmd.config.OutputDir == "" {
		return fmt.Errorf("validation error: -output is required")
	}

	start := time.Now().UTC().Truncate(24 * time.Hour)
	if cmd.config.StartDate != "" {
		start = table.ParseDate(cmd.config.StartDate)
		if start.IsZero() {
			return fmt.Errorf("validation error: invalid -date %q", cmd.config.StartDate)
		}
	}

	if cmd.config.Verbose {
		fmt.Printf("🔧 Generating %d orders, %.0f%% in the shipping plan\n",
			cmd.config.Orders, cmd.config.ShippingShare*100)
		fmt.Printf("📁 Output directory: %s\n", cmd.config.OutputDir)
		fmt.Printf("🎲 Random seed: %d\n", cmd.config.Seed)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	orders, shipping := cmd.generateRows(start)

	if err := writeTable(filepath.Join(cmd.config.OutputDir, "orders.csv"), orderHeader, orders); err != nil {
		return fmt.Errorf("failed to generate orders: %w", err)
	}
	if err := writeTable(filepath.Join(cmd.config.OutputDir, "shipping_plan.csv"), shippingHeader, shipping); err != nil {
		return fmt.Errorf("failed to generate shipping plan: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Printf("✅ Sample data generated successfully in %s\n", cmd.config.OutputDir)
	}
	return nil
}

func (cmd *GenerateCommand) generateRows(start time.Time) (orders, shipping [][]string) {
	for i := 0; i < cmd.config.Orders; i++ {
		number := fmt.Sprintf("SO-%05d", i+1)
		spec := cmd.specs[cmd.rand.Intn(len(cmd.specs))]

		quantity := 20 + cmd.rand.Intn(20)*10
		shipped := 0
		if cmd.rand.Float64() < 0.2 {
			shipped = cmd.rand.Intn(quantity / 2)
		}
		unshipped := quantity - shipped

		// stock is either missing, partial or sufficient
		var stock int
		switch cmd.rand.Intn(3) {
		case 1:
			stock = cmd.rand.Intn(unshipped)
		case 2:
			stock = unshipped + cmd.rand.Intn(20)
		}
		arrival := ""
		if stock > 0 && cmd.rand.Float64() < 0.5 {
			arrival = start.AddDate(0, 0, cmd.rand.Intn(14)-7).Format("2006-01-02")
		}

		notes := ""
		if cmd.rand.Float64() < 0.05 {
			notes = "completed"
		}

		delivery := start.AddDate(0, 0, 7+cmd.rand.Intn(60)).Format("2006-01-02")
		orders = append(orders, []string{
			number,
			spec.InnerDiameter.String(),
			spec.OuterDiameter.String(),
			strconv.Itoa(quantity),
			strconv.Itoa(1 + cmd.rand.Intn(2)),
			strconv.Itoa(10 + cmd.rand.Intn(5)*10),
			strconv.Itoa(shipped),
			strconv.Itoa(stock),
			arrival,
			strconv.Itoa(cmd.rand.Intn(10)),
			delivery,
			notes,
		})

		if cmd.rand.Float64() < cmd.config.ShippingShare {
			shipping = append(shipping, []string{
				number,
				fmt.Sprintf("CT-%04d", 1000+i),
				customers[cmd.rand.Intn(len(customers))],
				salespersons[cmd.rand.Intn(len(salespersons))],
				delivery,
			})
		}
	}
	return orders, shipping
}

func writeTable(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return table.WriteCSV(file, table.New(header, rows))
}

func (cmd *GenerateCommand) printHelp() {
	fmt.Printf(`Generate sample pipe orders and a matching shipping plan

USAGE:
    pipesched generate -orders <n> -output <dir> [options]

OPTIONS:
    -orders <n>         Number of orders to generate (default: 50)
    -shipping <f>       Fraction of orders listed in the shipping plan (default: 0.2)
    -date <date>        Reference date for delivery and arrival dates (default: today)
    -output <dir>       Output directory (writes orders.csv and shipping_plan.csv)
    -seed <n>           Random seed for reproducible output
    -verbose            Enable verbose output
    -help               Show this help message
`)
}
