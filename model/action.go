package model

// UpgradeShorthand is the pseudo unit code used to request an upgrade.
const UpgradeShorthand = "UP"

// Action is one queued build, upgrade or deploy order.
type Action struct {
	Shorthand string
	At        Location
}
