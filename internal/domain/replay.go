package domain

// ReplayFrame — запись одного кадра: dt и команды, поданные на вход Step.
type ReplayFrame struct {
	Frame    int       `json:"frame"`
	DT       float64   `json:"dt"`
	Commands []Command `json:"commands"`
}

// ReplaySession — полная запись боя.
// Вместе с тем же реестром и ареной сида достаточно, чтобы повторить бой кадр в кадр.
type ReplaySession struct {
	Seed      int64         `json:"seed"` // Зерно арены и всех rng актёров
	Timestamp int64         `json:"timestamp"`
	Frames    []ReplayFrame `json:"frames"`
}

// CommandCount возвращает общее число записанных команд.
func (s *ReplaySession) CommandCount() int {
	n := 0
	for _, f := range s.Frames {
		n += len(f.Commands)
	}
	return n
}
