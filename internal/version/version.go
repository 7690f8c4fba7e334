package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X dungeon-engine/internal/version.BuildDate=...".
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// buildEpoch - день 0 для номера сборки.
var buildEpoch = time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)

// Info - метаданные сборки.
type Info struct {
	BuildID   int
	BuildDate string
	Commit    string
	GoVersion string
	Modified  bool
}

// CalculateBuildID - число дней от buildEpoch до BuildDate.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

// Read собирает Info из ldflags, а недостающее берёт из debug.BuildInfo
// (vcs.revision, vcs.modified).
func Read() Info {
	info := Info{BuildDate: BuildDate, Commit: BuildCommit}
	if id, err := CalculateBuildID(); err == nil {
		info.BuildID = id
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String - строка для лога при старте.
func String() string {
	info := Read()

	commit := info.Commit
	if commit == "" {
		commit = "unknown"
	} else if len(commit) > 12 {
		commit = commit[:12]
	}
	if info.Modified {
		commit += "+dirty"
	}

	if info.BuildID == 0 && info.BuildDate == "" {
		return fmt.Sprintf("dungeon-engine dev build commit[%s] %s", commit, info.GoVersion)
	}
	return fmt.Sprintf("dungeon-engine build %d (%s) commit[%s] %s", info.BuildID, info.BuildDate, commit, info.GoVersion)
}
