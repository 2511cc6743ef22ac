package entities

// MachineAssignment is the engine's decision for one order
type MachineAssignment struct {
	MachineID           MachineID
	MoldID              string
	MoldChangeoverHours float64
	PipeChangeoverHours float64
	TotalSetupHours     float64
	Cost                float64
}
