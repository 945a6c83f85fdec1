package agent

import (
	"fmt"
	"strings"

	"github.com/nstehr/rampart/rampart-core/model"
	"github.com/nstehr/rampart/rampart-core/rules"
)

// summarize renders one turn as a single log-friendly line.
func summarize(r TurnResult, mem *rules.Memory) string {
	var b strings.Builder

	fmt.Fprintf(&b, "turn %d | SP %.1f MP %.1f", r.Turn, r.Resources[model.StructurePool], r.Resources[model.MobilePool])

	placed, upgraded := 0, 0
	for _, a := range r.Build {
		if a.Shorthand == model.UpgradeShorthand {
			upgraded++
		} else {
			placed++
		}
	}
	fmt.Fprintf(&b, " | built %d upgraded %d", placed, upgraded)

	fmt.Fprintf(&b, " | shields %d vs %d | enemy health %g", mem.ShieldCount, mem.EnemyShieldCount, mem.EnemyHealth)
	if mem.NeedShields {
		b.WriteString(" (shields requested)")
	}

	switch {
	case r.Decision.Approve:
		fmt.Fprintf(&b, " | %s: %d at %v", r.Decision.Branch, r.Decision.Quantity, r.Decision.Location)
	case r.Decision.Branch != "":
		fmt.Fprintf(&b, " | %s, no spawn", r.Decision.Branch)
	case r.Spawn.Profitable && !r.Spawn.Viable:
		fmt.Fprintf(&b, " | holding, path from %v is blocked", r.Spawn.Location)
	default:
		b.WriteString(" | holding")
	}

	if n := mem.Threats.Len(); n > 0 {
		fmt.Fprintf(&b, " | breaches %d", n)
	}
	return b.String()
}
