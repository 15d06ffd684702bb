package solver

import "math"

// DefaultInstanceName is used when an instance arrives without a name.
const DefaultInstanceName = "Inventory_Batch"

// Item is one stock-keeping unit in the replenishment group.
type Item struct {
	ID        string  `json:"id" yaml:"id"`
	SetupCost float64 `json:"a" yaml:"a"`
	Demand    float64 `json:"D" yaml:"D"`
	UnitValue float64 `json:"v" yaml:"v"`
}

// CostRatio returns a/(D*v), the ranking key of the grouping heuristic.
// Items with no demand-value flow (D*v == 0) return +Inf so they rank last.
func (it Item) CostRatio() float64 {
	dv := it.Demand * it.UnitValue
	if dv <= 0 {
		return math.Inf(1)
	}
	return it.SetupCost / dv
}

// Instance is a full joint replenishment problem.
type Instance struct {
	Name           string  `json:"instance_name" yaml:"instance_name"`
	MajorSetupCost float64 `json:"A" yaml:"A"`
	HoldingRate    float64 `json:"r" yaml:"r"`
	Items          []Item  `json:"items" yaml:"items"`
}

// DisplayName returns the instance name, falling back to DefaultInstanceName.
func (inst Instance) DisplayName() string {
	if inst.Name == "" {
		return DefaultInstanceName
	}
	return inst.Name
}

// ItemPolicy is the computed replenishment policy for a single item.
// Cycle is rounded to 5 fractional digits and the cost fields to 2,
// half to even, before packaging.
type ItemPolicy struct {
	ID          string  `json:"id"`
	Multiplier  int     `json:"multiplier"`
	Cycle       float64 `json:"individualCycle"`
	SetupCost   float64 `json:"setupCost"`
	HoldingCost float64 `json:"holdingCost"`
	TotalCost   float64 `json:"totalCost"`
}

// Policy is the full solver output: the base cycle, the total annual
// system cost, and the per-item policies in ranked order.
type Policy struct {
	InstanceName string       `json:"instanceName"`
	BaseCycle    float64      `json:"baseCycle"`
	TotalCost    float64      `json:"totalCost"`
	Items        []ItemPolicy `json:"items"`
}

// Solver describes the behaviour required from a policy solver.
type Solver interface {
	Solve(inst Instance) (Policy, error)
}
