package memory

import (
	"fmt"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/repositories"
)

// RuleRepository keeps the rule table in load order; first-match semantics
// in assignment depend on that order.
type RuleRepository struct {
	rules     []entities.MachineRule
	byMachine map[entities.MachineID][]int
}

// NewRuleRepository creates a new in-memory rule repository
func NewRuleRepository(expectedRules int) *RuleRepository {
	return &RuleRepository{
		rules:     make([]entities.MachineRule, 0, expectedRules),
		byMachine: make(map[entities.MachineID][]int),
	}
}

// Verify interface compliance
var _ repositories.RuleRepository = (*RuleRepository)(nil)

// LoadRules appends rules to the table
func (r *RuleRepository) LoadRules(rules []entities.MachineRule) error {
	for _, rule := range rules {
		if rule.MachineID == "" {
			return fmt.Errorf("rule %q has no machine id", rule.MoldID)
		}
		r.byMachine[rule.MachineID] = append(r.byMachine[rule.MachineID], len(r.rules))
		r.rules = append(r.rules, rule)
	}
	return nil
}

// GetAllRules returns the full table in load order
func (r *RuleRepository) GetAllRules() ([]entities.MachineRule, error) {
	rules := make([]entities.MachineRule, len(r.rules))
	copy(rules, r.rules)
	return rules, nil
}

// GetRulesForMachine returns the rules of one machine in load order
func (r *RuleRepository) GetRulesForMachine(id entities.MachineID) ([]entities.MachineRule, error) {
	indexes, exists := r.byMachine[id]
	if !exists {
		return nil, fmt.Errorf("no rules for machine: %s", id)
	}
	rules := make([]entities.MachineRule, 0, len(indexes))
	for _, i := range indexes {
		rules = append(rules, r.rules[i])
	}
	return rules, nil
}
