package rules

// initialEnemyHealth is the opponent's starting health, used until the first
// frame reports the real value.
const initialEnemyHealth = 30

// Memory is the state that survives between turns. It is written at turn
// boundaries and by frame ingestion only.
type Memory struct {
	Threats          *ThreatMemory
	ShieldCount      int
	EnemyShieldCount int
	EnemyHealth      float64
	NeedShields      bool
}

func NewMemory(threatRadius float64) *Memory {
	return &Memory{
		Threats:     NewThreatMemory(threatRadius),
		EnemyHealth: initialEnemyHealth,
	}
}
