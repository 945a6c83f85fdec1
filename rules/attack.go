package rules

import (
	"math"

	"github.com/nstehr/rampart/rampart-core/model"
)

// AttackDecision is what the attack rules settled on this turn. It is
// rebuilt every turn and never persisted.
type AttackDecision struct {
	Approve  bool
	Unit     model.UnitType
	Location model.Location
	Quantity int
	Branch   string // name of the rule that decided, empty when none fired
}

// SpawnEstimate is the risk breakdown for one spawn option.
type SpawnEstimate struct {
	Location  model.Location
	Reachable bool
	Shield    float64
	MinHits   int
	Survival  int
	NetValue  int
}

// SpawnEvaluation is the outcome of scoring every spawn option.
type SpawnEvaluation struct {
	Viable     bool           // profitable and the chosen path reaches the edge
	Profitable bool           // some reachable option had a positive net value
	Location   model.Location // chosen option, meaningful when Profitable
	Fallback   model.Location // least-damage reachable option
	HasRoute   bool           // Fallback is set
	Estimates  []SpawnEstimate
}

// SurvivalFactor is how many attackers get through per enemy hit once shields
// absorb some of the fire: 1 + floor((15 + shield) / 16).
func SurvivalFactor(shield float64) int {
	return 1 + int(math.Floor((15+shield)/16))
}

// NetValue is the attack's profitability: survivors scaled by the wave size,
// minus the hits the wave absorbs on its way.
func NetValue(survival, attackers, minHits int) int {
	return survival*attackers - minHits
}

// AttackEvaluator decides whether launching a wave is worth it and from where.
type AttackEvaluator struct {
	Risk    *PathRisk
	Options []model.Location
}

func NewAttackEvaluator(risk *PathRisk, options []model.Location) *AttackEvaluator {
	return &AttackEvaluator{Risk: risk, Options: options}
}

// EvaluateSpawn scores each option for a wave of attackers units. Options
// with no path are skipped. The best option is the first with the strictly
// greatest positive net value; the evaluation is viable only if that option's
// path also ends on the opposing edge.
func (a *AttackEvaluator) EvaluateSpawn(attackers int) (SpawnEvaluation, error) {
	if len(a.Options) == 0 {
		return SpawnEvaluation{}, &model.EmptyInputError{Op: "evaluate spawn"}
	}

	var ev SpawnEvaluation
	var reachable []model.Location
	bestNet := 0
	for _, loc := range a.Options {
		est := SpawnEstimate{Location: loc}
		path := a.Risk.board.FindPathToEdge(loc)
		if len(path) == 0 {
			ev.Estimates = append(ev.Estimates, est)
			continue
		}
		est.Reachable = true
		reachable = append(reachable, loc)

		// Each option is scored on its own, so the minimum over a single
		// candidate is just that candidate's value.
		est.Shield = a.Risk.shieldAlong(path)
		est.MinHits = a.Risk.hitsAlong(path)
		est.Survival = SurvivalFactor(est.Shield)
		est.NetValue = NetValue(est.Survival, attackers, est.MinHits)
		ev.Estimates = append(ev.Estimates, est)

		if est.NetValue > bestNet {
			bestNet = est.NetValue
			ev.Location = loc
			ev.Profitable = true
		}
	}

	if len(reachable) > 0 {
		fallback, err := a.Risk.SafestSpawn(reachable)
		if err != nil {
			return ev, err
		}
		ev.Fallback, ev.HasRoute = fallback, true
	}

	ev.Viable = ev.Profitable && a.Risk.EdgeTerminates(ev.Location)
	return ev, nil
}
