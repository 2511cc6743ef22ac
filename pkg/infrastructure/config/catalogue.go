// Package config loads and saves the machine/mold catalogue and the
// default scheduling constraints.
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/services/specparser"
)

const dateLayout = "2006-01-02"

// Catalogue is the persisted form of machines, rules and constraints
type Catalogue struct {
	Machines    []MachineRecord    `yaml:"machines"`
	Rules       []RuleRecord       `yaml:"rules"`
	Constraints *ConstraintsRecord `yaml:"constraints,omitempty"`
}

// MachineRecord is one machine entry in the catalogue file
type MachineRecord struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	DailyCapacity   int64   `yaml:"daily_capacity"`
	Efficiency      float64 `yaml:"efficiency"`
	Available       *bool   `yaml:"available,omitempty"`
	MaintenanceDate string  `yaml:"maintenance_date,omitempty"`
}

// RuleRecord is one machine/mold entry; Specification uses the free-text
// diameter grammar understood by specparser.Parse
type RuleRecord struct {
	MachineID           string  `yaml:"machine_id"`
	MoldID              string  `yaml:"mold_id"`
	Specification       string  `yaml:"specification"`
	MoldChangeoverHours float64 `yaml:"mold_changeover_hours"`
	PipeChangeoverHours float64 `yaml:"pipe_changeover_hours"`
}

// ConstraintsRecord overrides the default scheduling constraints
type ConstraintsRecord struct {
	WorkingDaysPerMonth int     `yaml:"working_days_per_month"`
	ShiftHours          float64 `yaml:"shift_hours"`
	BufferDays          int     `yaml:"buffer_days"`
	RespectDeadlines    bool    `yaml:"respect_deadlines"`
	ConsiderCapacity    bool    `yaml:"consider_capacity"`
	AvoidOvertime       bool    `yaml:"avoid_overtime"`
	BalanceLoad         bool    `yaml:"balance_load"`
}

// LoadCatalogue reads a YAML catalogue from disk
func LoadCatalogue(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue %s: %w", path, err)
	}
	cat, err := ParseCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalogue decodes YAML catalogue content
func ParseCatalogue(data []byte) (*Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	if len(cat.Rules) == 0 {
		return nil, fmt.Errorf("catalogue has no rules")
	}
	return &cat, nil
}

// Save writes the catalogue as YAML
func (c Catalogue) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write catalogue %s: %w", path, err)
	}
	return nil
}

// BuildMachines converts machine records; invalid records are logged and skipped
func (c Catalogue) BuildMachines() []entities.Machine {
	machines := make([]entities.Machine, 0, len(c.Machines))
	for i, rec := range c.Machines {
		m, err := rec.toMachine()
		if err != nil {
			log.Printf("config: skipping machine %d: %v", i+1, err)
			continue
		}
		machines = append(machines, *m)
	}
	return machines
}

// BuildRules parses every rule specification; records yielding no
// diameters are logged and skipped
func (c Catalogue) BuildRules() []entities.MachineRule {
	rules := make([]entities.MachineRule, 0, len(c.Rules))
	for i, rec := range c.Rules {
		rule, err := entities.NewMachineRule(
			entities.MachineID(rec.MachineID),
			rec.MoldID,
			rec.Specification,
			specparser.Parse(rec.Specification),
			rec.MoldChangeoverHours,
			rec.PipeChangeoverHours,
		)
		if err != nil {
			log.Printf("config: skipping rule %d: %v", i+1, err)
			continue
		}
		rules = append(rules, *rule)
	}
	return rules
}

// BuildConstraints applies the catalogue's constraints over the defaults
func (c Catalogue) BuildConstraints() entities.SchedulingConstraints {
	constraints := entities.DefaultConstraints()
	if c.Constraints == nil {
		return constraints
	}
	rec := c.Constraints
	if rec.WorkingDaysPerMonth > 0 {
		constraints.WorkingDaysPerMonth = rec.WorkingDaysPerMonth
	}
	if rec.ShiftHours > 0 {
		constraints.ShiftHours = rec.ShiftHours
	}
	constraints.BufferDays = rec.BufferDays
	constraints.RespectDeadlines = rec.RespectDeadlines
	constraints.ConsiderCapacity = rec.ConsiderCapacity
	constraints.AvoidOvertime = rec.AvoidOvertime
	constraints.BalanceLoad = rec.BalanceLoad
	return constraints
}

func (r MachineRecord) toMachine() (*entities.Machine, error) {
	efficiency := r.Efficiency
	if efficiency == 0 {
		efficiency = 1
	}
	m, err := entities.NewMachine(entities.MachineID(r.ID), r.Name, entities.Quantity(r.DailyCapacity), efficiency)
	if err != nil {
		return nil, err
	}
	if r.Available != nil {
		m.Available = *r.Available
	}
	if r.MaintenanceDate != "" {
		d, err := time.Parse(dateLayout, r.MaintenanceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid maintenance_date %q for machine %s (expected YYYY-MM-DD)", r.MaintenanceDate, r.ID)
		}
		m.MaintenanceDate = d
	}
	return m, nil
}
