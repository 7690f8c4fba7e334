package domain

// Rect - прямоугольная комната, углы включительно: стены по периметру,
// пол строго внутри.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersects считает касание пересечением, поэтому между комнатами остаётся стена.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains - клетка внутри пола комнаты.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x <= r.X2 && y > r.Y1 && y <= r.Y2
}
