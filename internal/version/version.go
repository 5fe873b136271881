package version

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

// Метаданные сборки, задаются через -ldflags "-X".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

var ErrNoBuildDate = errors.New("build date is empty")

var buildEpoch = time.Date(
	2025, time.December, 4,
	0, 0, 0, 0,
	time.UTC,
)

// Info — сведения о сборке симулятора.
type Info struct {
	BuildID   int
	Date      string
	Commit    string
	GoVersion string
	Modified  bool
}

// CalculateBuildID возвращает номер сборки: число дней от эпохи до date.
func CalculateBuildID(date string) (int, error) {
	if date == "" {
		return 0, ErrNoBuildDate
	}

	t, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", date, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before epoch", date)
	}

	// Часы, а не AddDate: обе даты в UTC
	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Read собирает сведения о сборке. Значения из ldflags важнее
// VCS-меток, которые toolchain кладёт в бинарник сам.
func Read() Info {
	info := Info{Date: BuildDate, Commit: BuildCommit}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.Date == "" && len(s.Value) >= len("2006-01-02") {
					info.Date = s.Value[:len("2006-01-02")]
				}
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}
	}

	if id, err := CalculateBuildID(info.Date); err == nil {
		info.BuildID = id
	}
	return info
}

// String возвращает строку для логов.
func (i Info) String() string {
	commit := coalesce(i.Commit, "unknown")
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("build %d (%s) commit[%s] go[%s]",
		i.BuildID, coalesce(i.Date, "unknown"), commit, coalesce(i.GoVersion, "unknown"))
}

// String — краткая форма для текущего бинарника.
func String() string {
	return Read().String()
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
