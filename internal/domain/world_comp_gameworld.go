package domain

import (
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
)

// PopulateBlocked сбрасывает Blocked до состояния "только стены".
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == enums.TileWall
	}
}

// ClearContent очищает индекс сущностей, сохраняя ёмкость слайсов.
func (m *Map) ClearContent() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// AddContent добавляет сущность в индекс клетки.
func (m *Map) AddContent(x, y int, id types.EntityID) {
	if !m.InBounds(x, y) {
		return
	}
	idx := m.XYIdx(x, y)
	m.TileContent[idx] = append(m.TileContent[idx], id)
}

// EntitiesAt возвращает сущности в клетке по данным последней индексации.
func (m *Map) EntitiesAt(x, y int) []types.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.XYIdx(x, y)]
}

// MoveBlocker переносит флаг занятости при перемещении блокирующей сущности.
func (m *Map) MoveBlocker(from, to Position) {
	if m.InBounds(from.X, from.Y) {
		idx := m.XYIdx(from.X, from.Y)
		m.Blocked[idx] = m.Tiles[idx] == enums.TileWall
	}
	if m.InBounds(to.X, to.Y) {
		m.Blocked[m.XYIdx(to.X, to.Y)] = true
	}
}

// SetVisibleTiles перезаписывает Visible и накапливает Revealed.
func (m *Map) SetVisibleTiles(tiles []int) {
	for i := range m.Visible {
		m.Visible[i] = false
	}
	for _, idx := range tiles {
		m.Visible[idx] = true
		m.Revealed[idx] = true
	}
}
