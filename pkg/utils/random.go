package utils

import "math/rand"

// NewRNG создаёт детерминированный генератор. Весь мир строится от одного сида,
// поэтому одинаковый сид даёт одинаковую карту и расстановку.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandRange возвращает число в [min, max] включительно. При max < min
// возвращает min.
func RandRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// RollDice бросает n кубиков с sides гранями.
func RollDice(rng *rand.Rand, n, sides int) int {
	if sides <= 0 {
		return 0
	}
	total := 0
	for i := 0; i < n; i++ {
		total += rng.Intn(sides) + 1
	}
	return total
}
