package domain

// MeleeDamage - урон удара. Попавший удар всегда наносит хотя бы 1.
func MeleeDamage(power, defense int) int {
	if dmg := power - defense; dmg > 0 {
		return dmg
	}
	return 1
}

// IsDead - HP может уйти в минус до зачистки мёртвых.
func (s *CombatStats) IsDead() bool {
	return s.HP <= 0
}

// Heal лечит не выше MaxHP и возвращает фактически восстановленное значение.
func (s *CombatStats) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := s.HP
	s.HP += amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.HP < before {
		return 0
	}
	return s.HP - before
}
