package memory

import (
	"fmt"

	"github.com/vsinha/pipesched/pkg/domain/entities"
	"github.com/vsinha/pipesched/pkg/domain/repositories"
)

// MachineRepository provides in-memory machine storage
type MachineRepository struct {
	machines    []entities.Machine
	machinesMap map[entities.MachineID]int
}

// NewMachineRepository creates a new in-memory machine repository
func NewMachineRepository(expectedMachines int) *MachineRepository {
	return &MachineRepository{
		machines:    make([]entities.Machine, 0, expectedMachines),
		machinesMap: make(map[entities.MachineID]int, expectedMachines),
	}
}

// Verify interface compliance
var _ repositories.MachineRepository = (*MachineRepository)(nil)

// LoadMachines loads machines into the repository. A repeated id replaces
// the earlier machine in place.
func (r *MachineRepository) LoadMachines(machines []entities.Machine) error {
	for _, m := range machines {
		if m.ID == "" {
			return fmt.Errorf("machine id cannot be empty")
		}
		r.AddMachine(m)
	}
	return nil
}

// AddMachine adds or replaces a machine
func (r *MachineRepository) AddMachine(m entities.Machine) {
	if index, exists := r.machinesMap[m.ID]; exists {
		r.machines[index] = m
		return
	}
	r.machinesMap[m.ID] = len(r.machines)
	r.machines = append(r.machines, m)
}

// GetMachine returns the machine with the given id
func (r *MachineRepository) GetMachine(id entities.MachineID) (*entities.Machine, error) {
	index, exists := r.machinesMap[id]
	if !exists {
		return nil, fmt.Errorf("machine not found: %s", id)
	}
	m := r.machines[index]
	return &m, nil
}

// GetAllMachines returns all machines in load order
func (r *MachineRepository) GetAllMachines() ([]entities.Machine, error) {
	machines := make([]entities.Machine, len(r.machines))
	copy(machines, r.machines)
	return machines, nil
}

// GetAvailableMachines returns machines flagged available, in load order
func (r *MachineRepository) GetAvailableMachines() ([]entities.Machine, error) {
	var machines []entities.Machine
	for _, m := range r.machines {
		if m.Available {
			machines = append(machines, m)
		}
	}
	return machines, nil
}
