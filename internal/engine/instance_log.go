package engine

import "github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"

// record добавляет кадр в ленту реплея. Намерения ИИ не пишутся:
// они детерминированно пересчитываются при повторе.
func (i *Instance) record(dt float64, cmds []domain.Command) {
	if i.Replay == nil {
		return
	}
	i.Replay.Frames = append(i.Replay.Frames, domain.ReplayFrame{
		Frame:    i.frame,
		DT:       dt,
		Commands: append([]domain.Command(nil), cmds...),
	})
}

// Playback повторяет записанные кадры на свежем инстансе.
// Инстанс должен быть создан с тем же сидом, реестром, ареной и спавнами.
func (i *Instance) Playback(session *domain.ReplaySession) []FrameReport {
	reports := make([]FrameReport, 0, len(session.Frames))
	for _, f := range session.Frames {
		reports = append(reports, i.Step(f.DT, f.Commands))
	}
	return reports
}
