package solver

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

const (
	cycleDigits = 5
	costDigits  = 2

	// maxMultiplier caps the cycle multiplier for items whose demand-value
	// flow is zero. Such items never justify a joint order on their own;
	// the cap keeps the output finite instead of overflowing the integer
	// conversion.
	maxMultiplier = math.MaxInt32
)

type groupingSolver struct {
	exactTotal bool
}

// Option configures solver behaviour.
type Option func(*groupingSolver)

// WithExactTotal makes the total system cost sum the unrounded per-item
// costs. The default sums the display-rounded per-item totals, matching
// the historical output of this planner.
func WithExactTotal() Option {
	return func(s *groupingSolver) {
		s.exactTotal = true
	}
}

// New creates a Solver implementing the indirect grouping heuristic for
// the joint replenishment problem. All half-way rounding is half to even:
// math.RoundToEven for the integer multipliers, banker's rounding for the
// displayed cycle times and costs.
func New(opts ...Option) Solver {
	s := &groupingSolver{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate reports whether the instance can yield a meaningful policy.
// It is called by Solve before any arithmetic runs, and is exported so
// ingestion layers can reject bad instances at upload time.
func Validate(inst Instance) error {
	if len(inst.Items) == 0 {
		return ErrNoItems
	}
	if inst.MajorSetupCost <= 0 {
		return ErrNonPositiveMajorSetup
	}
	if inst.HoldingRate <= 0 {
		return ErrNonPositiveHoldingRate
	}
	for _, it := range inst.Items {
		if it.Demand*it.UnitValue > 0 {
			return nil
		}
	}
	return ErrDegenerateInstance
}

func (s *groupingSolver) Solve(inst Instance) (Policy, error) {
	if err := Validate(inst); err != nil {
		return Policy{}, err
	}
	return s.compute(inst), nil
}

// compute is the arithmetic core. It assumes a validated instance and is
// total: no errors, no mutation of the input.
func (s *groupingSolver) compute(inst Instance) Policy {
	ranked := make([]Item, len(inst.Items))
	copy(ranked, inst.Items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CostRatio() < ranked[j].CostRatio()
	})

	// The reference item replenishes every base cycle; every other item
	// gets an integer multiple of it derived from the square-root ratio.
	multipliers := make([]int, len(ranked))
	multipliers[0] = 1
	refRate := ranked[0].Demand * ranked[0].UnitValue
	refSetup := inst.MajorSetupCost + ranked[0].SetupCost
	for i := 1; i < len(ranked); i++ {
		ratio := ranked[i].CostRatio() * refRate / refSetup
		m := math.RoundToEven(math.Sqrt(ratio))
		switch {
		case !(m < maxMultiplier):
			multipliers[i] = maxMultiplier
		case m < 1:
			multipliers[i] = 1
		default:
			multipliers[i] = int(m)
		}
	}

	// Closed-form minimizer of the total cost given fixed multipliers.
	setupSum := inst.MajorSetupCost
	flowSum := 0.0
	for i, it := range ranked {
		setupSum += it.SetupCost / float64(multipliers[i])
		flowSum += float64(multipliers[i]) * it.Demand * it.UnitValue
	}
	baseCycle := math.Sqrt(2 * setupSum / (inst.HoldingRate * flowSum))

	items := make([]ItemPolicy, len(ranked))
	total := inst.MajorSetupCost / baseCycle
	for i, it := range ranked {
		cycle := float64(multipliers[i]) * baseCycle
		setup := it.SetupCost / cycle
		holding := it.Demand * cycle * it.UnitValue * inst.HoldingRate / 2

		items[i] = ItemPolicy{
			ID:          it.ID,
			Multiplier:  multipliers[i],
			Cycle:       roundHalfEven(cycle, cycleDigits),
			SetupCost:   roundHalfEven(setup, costDigits),
			HoldingCost: roundHalfEven(holding, costDigits),
			TotalCost:   roundHalfEven(setup+holding, costDigits),
		}

		if s.exactTotal {
			total += setup + holding
		} else {
			total += items[i].TotalCost
		}
	}

	return Policy{
		InstanceName: inst.DisplayName(),
		BaseCycle:    baseCycle,
		TotalCost:    total,
		Items:        items,
	}
}

func roundHalfEven(x float64, places int32) float64 {
	// Non-finite values propagate as-is; decimal cannot represent them.
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).RoundBank(places).Float64()
	return f
}
