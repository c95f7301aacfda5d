package combat

import "chosenoffset.com/deepdelve/internal/entity"

// PlayerDamage resolves a player hit. Variance is applied before the floor of
// one, and a crit multiplies the floored value.
func PlayerDamage(w entity.Weapon, playerAttack, enemyDefense, variance int, crit bool) int {
	dmg := max(1, w.BaseDamage+w.AttackBonus+playerAttack-enemyDefense+variance)
	if crit {
		dmg = max(1, int(float64(dmg)*w.CritMultiplier))
	}
	return dmg
}

// EnemyDamage resolves an enemy hit. Defending halves the result, which still
// never drops below one.
func EnemyDamage(enemyAttack, playerDefense, variance int, defending bool) int {
	dmg := max(1, enemyAttack-playerDefense+variance)
	if defending {
		dmg = max(1, dmg/2)
	}
	return dmg
}
