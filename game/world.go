package game

import "math/rand"

// spawnPoint picks an enemy position at least tuning.SpawnDistance away from avoid.
//
// Candidates are drawn uniformly inside the field, inset by SpawnMargin when the
// field is large enough. After SpawnAttempts rejections the field corner farthest
// from avoid is used instead, so placement always terminates. The second return
// value is false when the fallback was taken.
func spawnPoint(bounds Bounds, avoid Vec2, tuning EnemyTuning, rng *rand.Rand) (Vec2, bool) {
	minX, maxX := insetRange(bounds.Width, tuning.SpawnMargin)
	minY, maxY := insetRange(bounds.Height, tuning.SpawnMargin)

	for i := 0; i < tuning.SpawnAttempts; i++ {
		p := Vec2{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		}
		if p.Dist(avoid) >= tuning.SpawnDistance {
			return p, true
		}
	}

	return farthestCorner(bounds, avoid, tuning.Radius), false
}

// insetRange returns [margin, size-margin], or the whole [0, size] when the
// margins would leave nothing
func insetRange(size, margin float64) (float64, float64) {
	if margin < 0 || size-2*margin <= 0 {
		return 0, size
	}
	return margin, size - margin
}

// farthestCorner returns the field corner farthest from p, pulled in by inset
// so a body of that radius stays inside the field
func farthestCorner(bounds Bounds, p Vec2, inset float64) Vec2 {
	minX, maxX := insetRange(bounds.Width, inset)
	minY, maxY := insetRange(bounds.Height, inset)
	corners := [4]Vec2{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: minX, Y: maxY},
		{X: maxX, Y: maxY},
	}

	best := corners[0]
	bestDist := best.Dist(p)
	for _, c := range corners[1:] {
		if d := c.Dist(p); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
