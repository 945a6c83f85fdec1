package rules

import (
	"encoding/json"
	"fmt"
	"os"
)

// Posture holds the tunable thresholds of the defense ladder and the attack
// branches. The compiler interpolates them into rule conditions.
type Posture struct {
	FirstShieldTurn      int     `json:"first_shield_turn"`
	HighWaterMark        float64 `json:"high_water_mark"`
	ShieldCap            int     `json:"shield_cap"`
	UpgradeTurn          int     `json:"upgrade_turn"`
	PriorityRingSize     int     `json:"priority_ring_size"`
	FastAttackThreshold  int     `json:"fast_attack_threshold"`
	HeavyAttackThreshold int     `json:"heavy_attack_threshold"`
	StallMargin          float64 `json:"stall_margin"`
	ThreatRadius         float64 `json:"threat_radius"`
	ShieldRadius         float64 `json:"shield_radius"`
	MaxWaveSize          int     `json:"max_wave_size"`
}

// DefaultPosture returns the baseline tuning.
func DefaultPosture() Posture {
	return Posture{
		FirstShieldTurn:      2,
		HighWaterMark:        8,
		ShieldCap:            12,
		UpgradeTurn:          5,
		PriorityRingSize:     8,
		FastAttackThreshold:  12,
		HeavyAttackThreshold: 18,
		StallMargin:          5,
		ThreatRadius:         3.5,
		ShieldRadius:         3.5,
		MaxWaveSize:          1000,
	}
}

// Validate clamps all fields to their valid ranges.
func (p *Posture) Validate() {
	p.FirstShieldTurn = clampInt(p.FirstShieldTurn, 0, 100)
	p.HighWaterMark = clamp(p.HighWaterMark, 0, 100)
	p.ShieldCap = clampInt(p.ShieldCap, 0, 100)
	p.UpgradeTurn = clampInt(p.UpgradeTurn, 0, 100)
	p.PriorityRingSize = clampInt(p.PriorityRingSize, 1, len(TurretRing))
	p.FastAttackThreshold = clampInt(p.FastAttackThreshold, 1, 1000)
	p.HeavyAttackThreshold = clampInt(p.HeavyAttackThreshold, 1, 1000)
	p.StallMargin = clamp(p.StallMargin, 0, 30)
	p.ThreatRadius = clamp(p.ThreatRadius, 0.5, 14)
	p.ShieldRadius = clamp(p.ShieldRadius, 0.5, 14)
	p.MaxWaveSize = clampInt(p.MaxWaveSize, 1, 1000)
}

// LoadPosture reads a JSON posture file over the defaults. Fields the file
// leaves out keep their default values.
func LoadPosture(path string) (Posture, error) {
	p := DefaultPosture()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read posture: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("unmarshal posture: %w", err)
	}
	p.Validate()
	return p, nil
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp restricts v to [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
