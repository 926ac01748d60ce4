package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Hit tests the player's hitbox against every obstacle in the field and
// returns the first obstacle it overlaps. Barriers are checked before birds,
// each pool in index order.
func Hit(player core.RectF, field *Field) (Obstacle, bool) {
	for _, pool := range field.Pools() {
		for _, o := range pool.obstacles {
			if player.Overlaps(pool.Hitbox(o)) {
				return o, true
			}
		}
	}
	return Obstacle{}, false
}

// TestAll reports whether the player's hitbox overlaps any obstacle.
func TestAll(player core.RectF, field *Field) bool {
	_, hit := Hit(player, field)
	return hit
}
