package rules

import "github.com/expr-lang/expr/vm"

// ActionFunc spends resources on the board when a rule's condition is true.
type ActionFunc func(env RuleEnv) error

// Rule is the atomic unit of behavior: a condition → action pair.
// The engine evaluates rules by priority and uses Category + Exclusive
// to turn a group of rules into an if/else-if chain.
type Rule struct {
	Name         string      // human-readable identifier
	Priority     int         // higher = evaluated first
	Category     string      // grouping for exclusive semantics
	Exclusive    bool        // if true, blocks lower-priority rules in same category
	ConditionSrc string      // expr source (preserved for logging)
	program      *vm.Program // compiled bytecode
	Action       ActionFunc
}
