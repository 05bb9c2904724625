package types

import (
	"fmt"
	"strconv"

	"dungeon-arena/internal/core/types/enums"
)

// EntityID - 64-битный идентификатор сущности арены.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Stage (24) | Index (32) ]
//
// Где:
//   - Kind - архетип (игрок, враг, снаряд, ящик...)
//   - Stage - номер этапа, на котором сущность создана
//   - Index - порядковый номер внутри этапа (монотонный счётчик мира)
//
// Stage позволяет рендеру выбросить спрайты, оставшиеся от прошлого этапа,
// не сравнивая списки целиком.
type EntityID uint64

// NilEntityID - нулевой идентификатор сущности.
const NilEntityID EntityID = 0

const (
	bitsIndex = 32
	bitsStage = 24
	bitsKind  = 8

	shiftStage = bitsIndex
	shiftKind  = bitsIndex + bitsStage

	maskIndex = (1 << bitsIndex) - 1
	maskStage = (1 << bitsStage) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID. Stage обрезается до 24 бит.
func PackEntityID(kind enums.EntityKind, stage uint32, index uint32) EntityID {
	return EntityID(
		(uint64(kind) << shiftKind) |
			(uint64(stage&maskStage) << shiftStage) |
			uint64(index),
	)
}

// Index возвращает порядковый номер сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Stage возвращает номер этапа, на котором сущность создана.
func (id EntityID) Stage() uint32 {
	return uint32((id >> shiftStage) & maskStage)
}

// Kind возвращает архетип сущности.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// IsStale - true, если сущность осталась от другого этапа.
func (id EntityID) IsStale(currentStage uint32) bool {
	return id.Stage() != currentStage&maskStage
}

// String возвращает человекочитаемое строковое представление EntityID.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}
	return fmt.Sprintf("[%s stage=%d idx=%d]", id.Kind(), id.Stage(), id.Index())
}

// MarshalJSON сериализует EntityID в JSON как строку,
// чтобы JS-клиенты зрителей не теряли точность uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON поддерживает как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}

// IDAllocator выдаёт идентификаторы в рамках одного этапа.
// Не потокобезопасен: принадлежит горутине симуляции.
type IDAllocator struct {
	stage uint32
	next  uint32
}

// Reset начинает нумерацию заново для нового этапа.
func (a *IDAllocator) Reset(stage uint32) {
	a.stage = stage
	a.next = 0
}

// Next возвращает новый идентификатор заданного архетипа.
func (a *IDAllocator) Next(kind enums.EntityKind) EntityID {
	a.next++
	return PackEntityID(kind, a.stage, a.next)
}
