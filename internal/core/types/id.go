package types

import (
	"fmt"
	"strconv"
)

// EntityID — 64-битный идентификатор участника боя (актёра или атаки).
//
// EntityID является value-type: его дешево копировать и сравнивать.
// Атаки и эффекты хранят ссылки на владельца только через EntityID,
// поэтому смерть владельца не оставляет висячих указателей.
//
// Формат битов (от старших к младшим):
//
//	[ Kind (8) | Team (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Kind — вид сущности (Player, Enemy, Attack)
//   - Team — номер команды, которой принадлежит сущность
//   - Generation — поколение аллокатора (номер инстанса/волны)
//   - Index — порядковый номер внутри аллокатора
type EntityID uint64

// NilEntityID — нулевой идентификатор, "сущности нет".
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	bitsIndex = 32
	bitsGen   = 16
	bitsTeam  = 8
	bitsKind  = 8

	shiftGen  = bitsIndex
	shiftTeam = bitsIndex + bitsGen
	shiftKind = bitsIndex + bitsGen + bitsTeam

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskTeam  = (1 << bitsTeam) - 1
	maskKind  = (1 << bitsKind) - 1
)

// PackEntityID собирает EntityID из составных частей.
//
// Функция не проверяет диапазоны и предполагает, что входные данные валидны.
func PackEntityID(kind uint8, team uint8, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(kind) << shiftKind) |
			(uint64(team) << shiftTeam) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает порядковый номер сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение аллокатора.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Team возвращает номер команды.
func (id EntityID) Team() uint8 {
	return uint8((id >> shiftTeam) & maskTeam)
}

// Kind возвращает вид сущности.
func (id EntityID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// String возвращает строковое представление для логов.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[kind=%d team=%d gen=%d idx=%d]",
		id.Kind(),
		id.Team(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON сериализует EntityID в JSON как строку.
//
// Снимки кадра уходят хосту, который может оказаться JS-клиентом без uint64.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует EntityID из строки или числа.
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
