package repositories

import "github.com/vsinha/pipesched/pkg/domain/entities"

// RuleRepository provides access to the machine/mold rule table
type RuleRepository interface {
	GetAllRules() ([]entities.MachineRule, error)
	GetRulesForMachine(id entities.MachineID) ([]entities.MachineRule, error)
	LoadRules(rules []entities.MachineRule) error
}
