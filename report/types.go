package report

import "time"

// Solution is the JSON-serializable snapshot of a problem.Solution: the
// sorted list of selected subset indices plus the cached cover flag.
// Loading a Solution back into a problem.Solution requires the Instance
// it was built over; Instance is not itself embedded, only named, since
// the instance is the caller's responsibility to load or hold onto.
type Solution struct {
	Instance        string `json:"instance"`
	SelectedSubsets []int  `json:"selected_subsets"`
	CoverAllPoints  bool   `json:"cover_all_points"`
}

// GreedyReport is the JSON snapshot of a greedy.Report.
type GreedyReport struct {
	SolutionFinal Solution      `json:"solution_final"`
	Time          time.Duration `json:"time"`
}

// RWLSPosition is the JSON snapshot of an rwls.Position.
type RWLSPosition struct {
	Step int           `json:"step"`
	Time time.Duration `json:"time"`
}

// RWLSReport is the JSON snapshot of an rwls.Report.
type RWLSReport struct {
	SolutionInitial Solution     `json:"solution_initial"`
	SolutionFinal   Solution     `json:"solution_final"`
	Steps           int          `json:"steps"`
	Time            time.Duration `json:"time"`
	FoundAt         RWLSPosition `json:"found_at"`
}

// MemeticPosition is the JSON snapshot of a memetic.Position.
type MemeticPosition struct {
	Generation             int          `json:"generation"`
	RWLSCumulativePosition RWLSPosition `json:"rwls_cumulative_position"`
	Time                   time.Duration `json:"time"`
}

// MemeticConfig is the JSON snapshot of a memetic.Config.
type MemeticConfig struct {
	PopulationSize      int           `json:"population_size"`
	MemeticTime         time.Duration `json:"memetic_time"`
	RWLSCumulativeSteps int           `json:"rwls_cumulative_steps"`
	RWLSCumulativeTime  time.Duration `json:"rwls_cumulative_time"`
}

// MemeticReport is the JSON snapshot of a memetic.Report.
type MemeticReport struct {
	SolutionFinal           Solution        `json:"solution_final"`
	FoundAt                 MemeticPosition `json:"found_at"`
	SolveConfig             MemeticConfig   `json:"solve_config"`
	CrossoverOperator       string          `json:"crossover_operator"`
	WeightCrossoverOperator string          `json:"weight_crossover_operator"`
	Generations             int             `json:"generations"`
}
