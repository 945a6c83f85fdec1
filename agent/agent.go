package agent

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nstehr/rampart/rampart-core/arena"
	"github.com/nstehr/rampart/rampart-core/ipc"
	"github.com/nstehr/rampart/rampart-core/model"
	"github.com/nstehr/rampart/rampart-core/rules"
)

// ErrNoConfig is returned when a game state arrives before the game config.
var ErrNoConfig = errors.New("game state before game config")

// Agent owns the decision-making for a single game.
type Agent struct {
	GameID  uuid.UUID
	Posture rules.Posture
	Catalog *model.UnitCatalog
	Memory  *rules.Memory
	Defense *rules.Engine
	Attack  *rules.Engine

	log   *slog.Logger
	prev  *stateSnapshot
	turns int
}

// New compiles the rule engines for posture. Memory and the unit catalog are
// created when the game config arrives.
func New(posture rules.Posture) (*Agent, error) {
	posture.Validate()
	defense, err := rules.NewEngine(rules.CompileDefense(posture))
	if err != nil {
		return nil, fmt.Errorf("compile defense rules: %w", err)
	}
	attack, err := rules.NewEngine(rules.CompileAttack(posture))
	if err != nil {
		return nil, fmt.Errorf("compile attack rules: %w", err)
	}
	return &Agent{
		Posture: posture,
		Defense: defense,
		Attack:  attack,
		log:     slog.Default(),
	}, nil
}

// HandleConfig starts a new game: the unit catalog is rebuilt and all
// memory from a previous game is dropped.
func (a *Agent) HandleConfig(env ipc.Envelope) (*ipc.Reply, error) {
	catalog, err := model.ParseGameConfig(env.Data)
	if err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	a.GameID = uuid.New()
	a.log = slog.Default().With("game", a.GameID.String())
	a.Catalog = catalog
	a.Memory = rules.NewMemory(a.Posture.ThreatRadius)
	a.prev = nil
	a.turns = 0

	a.log.Info("game started",
		"turret", catalog.Shorthand(model.Turret),
		"turretDamage", catalog.Spec(model.Turret).Damage,
		"rules", len(a.Defense.Names())+len(a.Attack.Names()),
	)
	return nil, nil
}

// HandleActionFrame folds one simulation frame into memory. Frames arrive
// many times per turn and never get a reply.
func (a *Agent) HandleActionFrame(env ipc.Envelope) (*ipc.Reply, error) {
	if a.Memory == nil {
		return nil, ErrNoConfig
	}
	snap, err := model.ParseSnapshot(env.Data)
	if err != nil {
		return nil, fmt.Errorf("action frame: %w", err)
	}
	if n := ingestFrame(a.Memory, snap); n > 0 {
		a.log.Debug("breaches recorded", "turn", snap.Turn, "frame", snap.Frame, "new", n, "total", a.Memory.Threats.Len())
	}
	return nil, nil
}

// HandleTurn plans one turn and returns the submission.
func (a *Agent) HandleTurn(env ipc.Envelope) (*ipc.Reply, error) {
	if a.Catalog == nil {
		return nil, ErrNoConfig
	}
	snap, err := model.ParseSnapshot(env.Data)
	if err != nil {
		return nil, fmt.Errorf("turn %d state: %w", a.turns, err)
	}

	events := detectEvents(snap, a.prev)
	cur := takeSnapshot(snap)
	a.prev = &cur

	result := a.PlayTurn(snap)
	result.Events = events
	a.turns++

	a.log.Info("turn played", "summary", summarize(result, a.Memory))
	if len(events) > 0 {
		a.log.Info("turn events", "turn", snap.Turn, "events", formatEvents(events))
	}
	return &ipc.Reply{Build: result.Build, Deploy: result.Deploy}, nil
}

// HandleEndGame logs the outcome. The connection stops reading afterwards.
func (a *Agent) HandleEndGame(env ipc.Envelope) (*ipc.Reply, error) {
	breaches := 0
	if a.Memory != nil {
		breaches = a.Memory.Threats.Len()
	}
	snap, err := model.ParseSnapshot(env.Data)
	if err != nil {
		a.log.Info("game over", "turns", a.turns, "breachesRecorded", breaches, "error", err)
		return nil, nil
	}
	a.log.Info("game over",
		"turns", a.turns,
		"outcome", outcome(snap),
		"health", snap.Stats[model.Self].Health,
		"enemyHealth", snap.Stats[model.Enemy].Health,
		"breachesRecorded", breaches,
	)
	return nil, nil
}

// TurnResult is what one planning pass produced.
type TurnResult struct {
	Turn      int
	Resources [2]float64 // SP and MP at the start of the turn
	Defense   []string   // defense rules that fired
	Attack    []string   // attack rules that fired
	Spawn     rules.SpawnEvaluation
	Decision  rules.AttackDecision
	Build     []model.Action
	Deploy    []model.Action
	Events    []Event
}

// PlayTurn runs the defense ladder and then the attack branches against a
// fresh board built from snap. Memory counters are refreshed first whatever
// the plan turns out to be.
func (a *Agent) PlayTurn(snap model.Snapshot) TurnResult {
	board := arena.New(a.Catalog, snap)
	refreshCounters(a.Memory, snap)

	result := TurnResult{
		Turn: snap.Turn,
		Resources: [2]float64{
			board.Resource(model.StructurePool),
			board.Resource(model.MobilePool),
		},
	}

	env := rules.RuleEnv{
		Board:   board,
		Catalog: a.Catalog,
		Memory:  a.Memory,
		Posture: a.Posture,
	}
	result.Defense = a.Defense.Evaluate(env)

	evaluator := rules.NewAttackEvaluator(
		rules.NewPathRisk(board, a.Catalog, a.Posture.ShieldRadius),
		rules.SpawnOptions,
	)
	attackers := env.MobileUnits()
	spawn, err := evaluator.EvaluateSpawn(attackers)
	if err != nil {
		a.log.Error("spawn evaluation failed", "turn", snap.Turn, "error", err)
	}
	env.Spawn, env.Decision = &spawn, &result.Decision
	result.Attack = a.Attack.Evaluate(env)
	result.Spawn = spawn

	a.log.Debug("attack evaluated",
		"turn", snap.Turn,
		"attackers", attackers,
		"reserveHint", env.ReserveHint(),
		"viable", spawn.Viable,
		"profitable", spawn.Profitable,
		"location", spawn.Location,
	)

	result.Build, result.Deploy = board.Actions()
	return result
}

func outcome(snap model.Snapshot) string {
	self, enemy := snap.Stats[model.Self].Health, snap.Stats[model.Enemy].Health
	switch {
	case self > enemy:
		return "won"
	case self < enemy:
		return "lost"
	default:
		return "draw"
	}
}
