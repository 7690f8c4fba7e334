package domain

// ChebyshevTo - расстояние в ходах с диагоналями.
func (p Position) ChebyshevTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ).
func (p Position) IsAdjacent(other Position) bool {
	return p != other && p.ChebyshevTo(other) <= 1
}

// Shift возвращает новую позицию со смещением.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
