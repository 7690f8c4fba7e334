package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный идентификатор сущности в мире.
//
// Идентификатор непрозрачен для систем: его можно копировать, сравнивать
// и хранить в компонентах как слабую ссылку, но не разбирать на части
// вне пакета ecs.
//
// Формат битов (от старших к младшим):
//
//	[ Reserved (16) | Generation (16) | Index (32) ]
//
// Где:
//   - Generation — версия слота (слот переиспользуется после удаления)
//   - Index — индекс слота в пуле сущностей
//
// Поколение начинается с 1, поэтому нулевое значение никогда не выдаётся
// живой сущности.
type EntityID uint64

// NilEntityID — отсутствие сущности.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsGen   = 16

	shiftGen = bitsIndex

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
)

// PackEntityID собирает EntityID из поколения и индекса слота.
//
// Проверок диапазона нет: старшие биты gen и index отбрасываются маской.
func PackEntityID(gen uint16, index uint32) EntityID {
	return EntityID((uint64(gen)&maskGen)<<shiftGen | uint64(index)&maskIndex)
}

// Index возвращает индекс слота.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
//
// Ссылка, чьё поколение не совпадает с текущим поколением слота, считается
// устаревшей (сущность уже удалена).
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String возвращает представление для логов.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("%d#%d", id.Index(), id.Generation())
}

// MarshalJSON сериализует EntityID строкой, чтобы не терять точность uint64
// на стороне клиента.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON принимает как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("entity id %q: %w", s, err)
	}

	*id = EntityID(v)
	return nil
}
