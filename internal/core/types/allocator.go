package types

// Allocator выдаёт EntityID в детерминированном порядке.
//
// Индексы не переиспользуются: два инстанса с одинаковой последовательностью
// спавнов получают одинаковые идентификаторы, что нужно для реплеев по сиду.
type Allocator struct {
	gen  uint16
	next uint32
}

// NewAllocator создаёт аллокатор для указанного поколения.
func NewAllocator(gen uint16) *Allocator {
	return &Allocator{gen: gen, next: 1}
}

// Next возвращает следующий свободный идентификатор.
func (a *Allocator) Next(kind uint8, team uint8) EntityID {
	id := PackEntityID(kind, team, a.gen, a.next)
	a.next++
	return id
}

// Issued возвращает количество уже выданных идентификаторов.
func (a *Allocator) Issued() int {
	return int(a.next - 1)
}
