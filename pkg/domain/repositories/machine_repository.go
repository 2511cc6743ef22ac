package repositories

import "github.com/vsinha/pipesched/pkg/domain/entities"

// MachineRepository provides access to the configured machines
type MachineRepository interface {
	GetMachine(id entities.MachineID) (*entities.Machine, error)
	GetAllMachines() ([]entities.Machine, error)
	// GetAvailableMachines returns machines whose availability flag is set, in load order.
	GetAvailableMachines() ([]entities.Machine, error)
	LoadMachines(machines []entities.Machine) error
}
