package game

// circlesOverlap checks the projectile-vs-body test used for every hit:
// the projectile's center must be closer than radius+margin to the body's center
func circlesOverlap(point, center Vec2, radius, margin float64) bool {
	return point.Dist(center) < radius+margin
}

// advance moves a projectile one tick and reports whether it is still in flight
func advance(p *Projectile, bounds Bounds) bool {
	p.Pos = p.Pos.Add(p.Vel)
	p.Life--
	return p.Life > 0 && bounds.Contains(p.Pos)
}

// AdvancePlayerProjectiles moves player-owned projectiles and resolves hits on enemies.
//
// Each projectile hits at most one enemy per tick: the first live enemy in slice
// order whose body it overlaps. Hits are delivered to sink immediately, so an enemy
// killed earlier in the pass is not hit again. The pool is compacted in place.
func AdvancePlayerProjectiles(pool []Projectile, enemies []*Enemy, bounds Bounds, margin float64, sink DamageSink) []Projectile {
	kept := pool[:0]
	for i := range pool {
		p := pool[i]
		if !advance(&p, bounds) {
			continue
		}

		hit := false
		for _, e := range enemies {
			if !e.Alive() {
				continue
			}
			if circlesOverlap(p.Pos, e.Pos, e.Radius, margin) {
				sink.ApplyDamage(Hit{
					Target: Target{Kind: TargetEnemy, ID: e.ID},
					Amount: p.Damage,
					Pos:    p.Pos,
				})
				hit = true
				break
			}
		}
		if !hit {
			kept = append(kept, p)
		}
	}
	return kept
}

// AdvanceEnemyProjectiles moves enemy-owned projectiles and resolves hits on the player.
// The pool is compacted in place.
func AdvanceEnemyProjectiles(pool []Projectile, player *Player, bounds Bounds, margin float64, sink DamageSink) []Projectile {
	kept := pool[:0]
	for i := range pool {
		p := pool[i]
		if !advance(&p, bounds) {
			continue
		}

		if circlesOverlap(p.Pos, player.Pos, player.Radius, margin) {
			sink.ApplyDamage(Hit{
				Target: Target{Kind: TargetPlayer},
				Amount: p.Damage,
				Pos:    p.Pos,
			})
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
