package rules

import "github.com/nstehr/rampart/rampart-core/model"

func cells(pairs ...[2]int) []model.Location {
	out := make([]model.Location, len(pairs))
	for i, p := range pairs {
		out[i] = model.Loc(p[0], p[1])
	}
	return out
}

// Fixed base layout. Our half is rows 0–13; the frontline sits on rows 9–13
// with a funnel of walls leading down to the two spawn corners.
var (
	// ShieldAnchors run diagonally behind the right flank. The first entry
	// doubles as the rally point for the very first shield.
	ShieldAnchors = cells(
		[2]int{21, 9}, [2]int{20, 8}, [2]int{19, 7}, [2]int{18, 6},
		[2]int{17, 5}, [2]int{16, 4}, [2]int{15, 3}, [2]int{14, 2},
	)

	// PerimeterTurrets hold the two corners and the two gap anchors.
	PerimeterTurrets = cells([2]int{0, 13}, [2]int{27, 13}, [2]int{6, 10}, [2]int{21, 10})

	// GapBackfills cover a gap anchor from the neighbouring cell when the
	// anchor itself could not be built.
	GapBackfills = []struct {
		Side             string
		Anchor, Backfill model.Location
	}{
		{Side: "left", Anchor: model.Loc(6, 10), Backfill: model.Loc(5, 10)},
		{Side: "right", Anchor: model.Loc(21, 10), Backfill: model.Loc(22, 10)},
	}

	// OuterWall is the cheap funnel from both corners down to the spawn points.
	OuterWall = cells(
		[2]int{1, 13}, [2]int{26, 13}, [2]int{2, 12}, [2]int{25, 12}, [2]int{3, 11}, [2]int{5, 11},
		[2]int{6, 11}, [2]int{21, 11}, [2]int{22, 11}, [2]int{24, 11}, [2]int{20, 9}, [2]int{7, 8},
		[2]int{19, 8}, [2]int{8, 7}, [2]int{18, 7}, [2]int{9, 6}, [2]int{17, 6}, [2]int{10, 5},
		[2]int{16, 5}, [2]int{11, 4}, [2]int{15, 4}, [2]int{12, 3}, [2]int{14, 3}, [2]int{13, 2},
	)

	// InnerWall reinforces the cells either side of the gap anchors.
	InnerWall = cells([2]int{7, 11}, [2]int{19, 11}, [2]int{20, 11}, [2]int{6, 9})

	// EarlyWallUpgrades are the frontline walls hardened as soon as they exist.
	EarlyWallUpgrades = cells(
		[2]int{1, 13}, [2]int{26, 13}, [2]int{2, 12}, [2]int{25, 12}, [2]int{3, 11},
		[2]int{5, 11}, [2]int{6, 11}, [2]int{21, 11}, [2]int{22, 11}, [2]int{24, 11},
	)

	// FrontlineWallUpgrades extends the early set with the inner wall cells
	// on row 11. It is upgraded in threat order once the base is established.
	FrontlineWallUpgrades = cells(
		[2]int{1, 13}, [2]int{26, 13}, [2]int{2, 12}, [2]int{25, 12}, [2]int{3, 11}, [2]int{5, 11},
		[2]int{6, 11}, [2]int{7, 11}, [2]int{19, 11}, [2]int{20, 11}, [2]int{21, 11}, [2]int{22, 11},
		[2]int{24, 11},
	)

	// TurretRing is the secondary ring of turrets behind the frontline.
	TurretRing = cells(
		[2]int{1, 12}, [2]int{26, 12}, [2]int{2, 11}, [2]int{25, 11}, [2]int{3, 10}, [2]int{5, 10},
		[2]int{7, 10}, [2]int{19, 10}, [2]int{20, 10}, [2]int{22, 10}, [2]int{24, 10}, [2]int{7, 9},
		[2]int{19, 9},
	)

	// SpawnOptions are where attack waves may be launched from, one per
	// deploy edge.
	SpawnOptions = cells([2]int{11, 2}, [2]int{16, 2})
)
