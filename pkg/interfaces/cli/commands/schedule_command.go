package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vsinha/pipesched/pkg/application/services/orchestration"
	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/infrastructure/config"
	"github.com/vsinha/pipesched/pkg/infrastructure/events"
	"github.com/vsinha/pipesched/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/pipesched/pkg/infrastructure/table"
	"github.com/vsinha/pipesched/pkg/interfaces/cli/output"
)

// Config holds configuration for the schedule command
type Config struct {
	OrdersFile       string
	ShippingPlanFile string
	CatalogueFile    string
	Strategy         string
	RespectDeadlines *bool // nil keeps the catalogue setting
	Date             string
	Format           string
	OutputDir        string
	WriteCatalogue   string
	Verbose          bool
	Help             bool
}

// ScheduleCommand loads orders and a catalogue and prints a production plan
type ScheduleCommand struct {
	config Config
}

// NewScheduleCommand creates a new schedule command with the given configuration
func NewScheduleCommand(config Config) *ScheduleCommand {
	return &ScheduleCommand{config: config}
}

// Execute runs the schedule command
func (c *ScheduleCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	catalogue, err := c.loadCatalogue()
	if err != nil {
		return err
	}

	if c.config.WriteCatalogue != "" {
		if err := catalogue.Save(c.config.WriteCatalogue); err != nil {
			return err
		}
		if c.config.Verbose {
			fmt.Printf("💾 Catalogue written to: %s\n", c.config.WriteCatalogue)
		}
		if c.config.OrdersFile == "" {
			return nil
		}
	}

	strategyName := c.config.Strategy
	if strategyName == "" {
		strategyName = entities.CapacityFirst.String()
	}
	strategy, err := entities.ParseStrategy(strategyName)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	constraints, err := c.constraints(catalogue)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(strategy, constraints)
		fmt.Println("📂 Loading order tables...")
	}

	orders, err := table.ReadCSVFile(c.config.OrdersFile)
	if err != nil {
		return fmt.Errorf("error loading orders: %w", err)
	}
	var shipping *table.Table
	if c.config.ShippingPlanFile != "" {
		shipping, err = table.ReadCSVFile(c.config.ShippingPlanFile)
		if err != nil {
			return fmt.Errorf("error loading shipping plan: %w", err)
		}
	}

	machines := catalogue.BuildMachines()
	rules := catalogue.BuildRules()

	machineRepo := memory.NewMachineRepository(len(machines))
	if err := machineRepo.LoadMachines(machines); err != nil {
		return fmt.Errorf("failed to load machines into repository: %w", err)
	}
	ruleRepo := memory.NewRuleRepository(len(rules))
	if err := ruleRepo.LoadRules(rules); err != nil {
		return fmt.Errorf("failed to load rules into repository: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Order rows: %d\n", orders.Len())
		if shipping != nil {
			fmt.Printf("  Shipping plan rows: %d\n", shipping.Len())
		}
		fmt.Printf("  Machines: %d\n", len(machines))
		fmt.Printf("  Rules: %d\n", len(rules))
		fmt.Println()
	}

	store := events.NewInMemoryEventStore()
	if c.config.Verbose {
		if err := store.Subscribe([]string{events.OrderPlacedEvent, events.OrderConflictEvent}, progressPrinter()); err != nil {
			return fmt.Errorf("failed to subscribe to run events: %w", err)
		}
		fmt.Println("🔄 Scheduling orders...")
	}

	orchestrator := orchestration.NewPlanningOrchestrator(machineRepo, ruleRepo, store)

	startTime := time.Now()
	result, err := orchestrator.RunCompletePlanning(ctx, orchestration.PlanningRequest{
		Orders:       orders,
		ShippingPlan: shipping,
		Strategy:     strategy,
		Constraints:  constraints,
	})
	runTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("error running planning: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Scheduling completed in %v\n\n", runTime)
	}

	format := c.config.Format
	if format == "" {
		format = "text"
	}
	err = output.Generate(result, output.Config{
		Format:    format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		RunTime:   runTime,
	})
	if err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("🏁 Planning complete!")
	}
	return nil
}

// validateInputs validates the command configuration
func (c *ScheduleCommand) validateInputs() error {
	if c.config.OrdersFile == "" && c.config.WriteCatalogue == "" {
		return fmt.Errorf("must specify -orders (or -write-catalogue)")
	}
	for name, path := range map[string]string{
		"orders":        c.config.OrdersFile,
		"shipping plan": c.config.ShippingPlanFile,
		"catalogue":     c.config.CatalogueFile,
	} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%s file not found: %s", name, path)
		}
	}
	return nil
}

func (c *ScheduleCommand) loadCatalogue() (config.Catalogue, error) {
	if c.config.CatalogueFile == "" {
		return config.DefaultCatalogue(), nil
	}
	catalogue, err := config.LoadCatalogue(c.config.CatalogueFile)
	if err != nil {
		return config.Catalogue{}, fmt.Errorf("error loading catalogue: %w", err)
	}
	return *catalogue, nil
}

func (c *ScheduleCommand) constraints(catalogue config.Catalogue) (entities.SchedulingConstraints, error) {
	constraints := catalogue.BuildConstraints()
	if c.config.RespectDeadlines != nil {
		constraints.RespectDeadlines = *c.config.RespectDeadlines
	}
	if c.config.Date != "" {
		ref := table.ParseDate(c.config.Date)
		if ref.IsZero() {
			return constraints, fmt.Errorf("invalid -date %q", c.config.Date)
		}
		constraints.ReferenceDate = ref
	}
	return constraints, nil
}

func progressPrinter() events.EventHandler {
	return &events.HandlerFunc{Fn: func(e events.Event) error {
		switch data := e.Data().(type) {
		case events.OrderPlaced:
			fmt.Printf("  ✔ %s on machine %s, %s to %s\n", data.OrderNumber, data.MachineID,
				data.StartDate.Format("2006-01-02"), data.EndDate.Format("2006-01-02"))
		case events.OrderConflict:
			fmt.Printf("  ✘ %s\n", data.Message)
		}
		return nil
	}}
}

// printHeader prints the command header information
func (c *ScheduleCommand) printHeader(strategy entities.Strategy, constraints entities.SchedulingConstraints) {
	fmt.Printf("🚀 Pipe Production Scheduler\n")
	fmt.Printf("Orders: %s\n", c.config.OrdersFile)
	if c.config.ShippingPlanFile != "" {
		fmt.Printf("Shipping plan: %s\n", c.config.ShippingPlanFile)
	}
	if c.config.CatalogueFile != "" {
		fmt.Printf("Catalogue: %s\n", c.config.CatalogueFile)
	} else {
		fmt.Printf("Catalogue: built-in\n")
	}
	fmt.Printf("Strategy: %s\n", strategy)
	fmt.Printf("Reference date: %s\n", constraints.Today().Format("2006-01-02"))
	fmt.Printf("Respect deadlines: %t\n", constraints.RespectDeadlines)
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *ScheduleCommand) showHelp() {
	fmt.Printf(`Pipe Production Scheduler - machine and mold scheduling for pipe orders

USAGE:
    pipesched -orders <file> [-shipping-plan <file>] [options]
    pipesched generate -orders <n> -output <dir>

OPTIONS:
    -orders <file>          Order table (CSV)
    -shipping-plan <file>   Shipping plan table (CSV); matched orders become Urgent
    -catalogue <file>       Machine/mold catalogue (YAML); built-in when omitted
    -strategy <name>        capacity-first, time-first, order-first, balanced (default: capacity-first)
    -respect-deadlines      Reject time-first placements that end after delivery
    -date <date>            Reference date (default: today)
    -format <fmt>           Output format: text, json, csv (default: text)
    -output <dir>           Output directory for results (optional)
    -write-catalogue <file> Write the active catalogue as YAML
    -verbose                Enable verbose output
    -help                   Show this help message

ENVIRONMENT (also read from .env):
    PIPESCHED_CATALOGUE, PIPESCHED_STRATEGY, PIPESCHED_FORMAT

ORDER TABLE COLUMNS:
    order_number,inner_diameter,outer_diameter,quantity,segments,daily_rate,production_days,
    shipped_qty,unshipped_qty,stock_qty,stock_arrival_date,preprocessed_qty,delivery_date,
    notes,customer_model
    Dates: 2006-01-02, 2006/01/02, 2006-01-02 15:04:05 or 2006.01.02

SHIPPING PLAN COLUMNS:
    order_number,contract_number,customer_name,customer_model,salesperson,delivery_date

EXAMPLES:
    # Capacity-first plan with the built-in catalogue
    pipesched -orders data/orders.csv -verbose

    # Deadline-aware plan as JSON
    pipesched -orders data/orders.csv -shipping-plan data/shipping.csv -strategy time-first -respect-deadlines -format json

    # Export the built-in catalogue for editing
    pipesched -write-catalogue catalogue.yaml
`)
}
