package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/domain"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/engine"
	"github.com/NagusameCS/Into-The-Deluge-sub000/internal/systems"
	"github.com/NagusameCS/Into-The-Deluge-sub000/pkg/logger"
	"github.com/sirupsen/logrus"
)

type rosterEntry struct {
	classID string
	count   int
}

// parseRoster разбирает строку вида "goblin:3,orc:1". Без счётчика — один враг.
func parseRoster(s string) ([]rosterEntry, error) {
	var out []rosterEntry
	for _, part := range splitList(s) {
		classID, countStr, hasCount := strings.Cut(part, ":")
		count := 1
		if hasCount {
			n, err := strconv.Atoi(countStr)
			if err != nil {
				return nil, fmt.Errorf("roster entry %q: %w", part, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("roster entry %q: negative count", part)
			}
			count = n
		}
		out = append(out, rosterEntry{classID: strings.TrimSpace(classID), count: count})
	}
	return out, nil
}

// summary копит итоги по отчётам кадров.
type summary struct {
	frames   int
	hits     int
	crits    int
	damage   float64
	healed   float64
	deaths   int
	levelUps int
	rejected int
}

func (s *summary) add(r engine.FrameReport) {
	s.frames++
	s.rejected += len(r.Rejected)
	s.levelUps += len(r.LevelUps)

	for _, res := range r.Results {
		switch res.Kind {
		case systems.ResultHeal:
			s.healed += res.Amount
		default:
			if res.Amount > 0 {
				s.hits++
				s.damage += res.Amount
			}
			if res.IsCrit {
				s.crits++
			}
		}
	}

	for _, d := range r.Deaths {
		s.deaths++
		logger.Log.WithFields(logrus.Fields{
			"frame":     r.Frame,
			"actor_id":  d.ActorID,
			"class":     d.ClassID,
			"killer_id": d.KillerID,
		}).Info("Actor died")
	}
	for _, lu := range r.LevelUps {
		logger.Log.WithFields(logrus.Fields{
			"frame":    r.Frame,
			"actor_id": lu.ActorID,
			"level":    lu.Level,
		}).Info("Level up")
	}
}

func (s *summary) log(inst *engine.Instance, players []*domain.Actor) {
	logger.Log.WithFields(logrus.Fields{
		"frames":   s.frames,
		"time":     inst.Time(),
		"hits":     s.hits,
		"crits":    s.crits,
		"damage":   s.damage,
		"healed":   s.healed,
		"deaths":   s.deaths,
		"level_up": s.levelUps,
		"rejected": s.rejected,
		"hostiles": inst.Hostiles(engine.TeamPlayers),
	}).Info("Simulation finished")

	for _, p := range players {
		v := engine.BuildView(p)
		logger.Log.WithFields(logrus.Fields{
			"actor_id": v.ID,
			"class":    v.ClassID,
			"level":    v.Level,
			"health":   v.Health,
			"dead":     v.IsDead,
		}).Info("Party member")
	}
}
