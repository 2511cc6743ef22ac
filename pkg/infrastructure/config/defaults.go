package config

// DefaultCatalogue returns the built-in seven-machine catalogue
func DefaultCatalogue() Catalogue {
	machines := make([]MachineRecord, len(defaultMachines))
	copy(machines, defaultMachines)
	rules := make([]RuleRecord, len(defaultRules))
	copy(rules, defaultRules)
	constraints := defaultConstraints
	return Catalogue{Machines: machines, Rules: rules, Constraints: &constraints}
}

var defaultMachines = []MachineRecord{
	{ID: "1", Name: "Line 1", DailyCapacity: 120, Efficiency: 0.95},
	{ID: "2", Name: "Line 2", DailyCapacity: 100, Efficiency: 0.95},
	{ID: "3", Name: "Line 3", DailyCapacity: 80, Efficiency: 0.9},
	{ID: "4", Name: "Line 4", DailyCapacity: 60, Efficiency: 0.9},
	{ID: "5", Name: "Line 5", DailyCapacity: 50, Efficiency: 0.85},
	{ID: "6", Name: "Line 6", DailyCapacity: 40, Efficiency: 0.85},
	{ID: "7", Name: "Line 7", DailyCapacity: 30, Efficiency: 0.8},
}

var defaultRules = []RuleRecord{
	{MachineID: "1", MoldID: "M1-01", Specification: "60/75、65/80", MoldChangeoverHours: 3, PipeChangeoverHours: 1},
	{MachineID: "1", MoldID: "M1-02", Specification: "90", MoldChangeoverHours: 3, PipeChangeoverHours: 1},
	{MachineID: "1", MoldID: "M1-03", Specification: "75/95、80/102", MoldChangeoverHours: 3, PipeChangeoverHours: 1},

	{MachineID: "2", MoldID: "M2-01", Specification: "102、113、120/137", MoldChangeoverHours: 4, PipeChangeoverHours: 1.5},
	{MachineID: "2", MoldID: "M2-02", Specification: "130/154", MoldChangeoverHours: 4, PipeChangeoverHours: 1.5},
	{MachineID: "2", MoldID: "M2-03", Specification: "110/130、115/140", MoldChangeoverHours: 4, PipeChangeoverHours: 1.5},
	{MachineID: "2", MoldID: "M2-04", Specification: "Φ125/150", MoldChangeoverHours: 4, PipeChangeoverHours: 1.5},

	{MachineID: "3", MoldID: "M3-01", Specification: "160/180、170/190", MoldChangeoverHours: 5, PipeChangeoverHours: 2},
	{MachineID: "3", MoldID: "M3-02", Specification: "180、200/217 (大)", MoldChangeoverHours: 5, PipeChangeoverHours: 2},
	{MachineID: "3", MoldID: "M3-03", Specification: "130/154-204/226", MoldChangeoverHours: 5, PipeChangeoverHours: 2},
	{MachineID: "3", MoldID: "M3-04", Specification: "190/210、196/218", MoldChangeoverHours: 5, PipeChangeoverHours: 2},

	{MachineID: "4", MoldID: "M4-01", Specification: "230/250、240/260", MoldChangeoverHours: 6, PipeChangeoverHours: 2},
	{MachineID: "4", MoldID: "M4-02", Specification: "250/272", MoldChangeoverHours: 6, PipeChangeoverHours: 2},
	{MachineID: "4", MoldID: "M4-03", Specification: "380/414(锥)", MoldChangeoverHours: 8, PipeChangeoverHours: 3},

	{MachineID: "5", MoldID: "M5-01", Specification: "270/290、280/300", MoldChangeoverHours: 6, PipeChangeoverHours: 2.5},
	{MachineID: "5", MoldID: "M5-02", Specification: "300/325、315/340", MoldChangeoverHours: 6, PipeChangeoverHours: 2.5},
	{MachineID: "5", MoldID: "M5-03", Specification: "350/377-370/400", MoldChangeoverHours: 7, PipeChangeoverHours: 2.5},

	{MachineID: "6", MoldID: "M6-01", Specification: "260/280", MoldChangeoverHours: 7, PipeChangeoverHours: 3},
	{MachineID: "6", MoldID: "M6-02", Specification: "480/510", MoldChangeoverHours: 8, PipeChangeoverHours: 3},
	{MachineID: "6", MoldID: "M6-03", Specification: "255/280（大）", MoldChangeoverHours: 8, PipeChangeoverHours: 3},

	{MachineID: "7", MoldID: "M7-01", Specification: "560/600", MoldChangeoverHours: 10, PipeChangeoverHours: 4},
	{MachineID: "7", MoldID: "M7-02", Specification: "570/600(锥)", MoldChangeoverHours: 10, PipeChangeoverHours: 4},
}

var defaultConstraints = ConstraintsRecord{
	WorkingDaysPerMonth: 26,
	ShiftHours:          8,
	BufferDays:          2,
	RespectDeadlines:    true,
	ConsiderCapacity:    true,
	AvoidOvertime:       false,
	BalanceLoad:         true,
}
