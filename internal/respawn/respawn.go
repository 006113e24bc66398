// Package respawn computes when a boss becomes available and formats
// that instant for display.
package respawn

import (
	"fmt"
	"time"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

// ResolveInstant returns the instant the boss respawns. Precedence: an
// explicitly set future respawn time wins, then death time plus respawn
// interval, then a past respawn time. The second return is false when no
// temporal basis is resolvable.
func ResolveInstant(boss *entity.Boss, now time.Time) (time.Time, bool) {
	if boss == nil {
		return time.Time{}, false
	}
	if boss.RespawnAt != nil && boss.RespawnAt.After(now) {
		return *boss.RespawnAt, true
	}
	if boss.DiedAt != nil && boss.RespawnHours > 0 {
		interval := time.Duration(boss.RespawnHours * float64(time.Hour))
		return boss.DiedAt.Add(interval), true
	}
	if boss.RespawnAt != nil {
		return *boss.RespawnAt, true
	}
	return time.Time{}, false
}

// FormatCountdown renders the remaining time until instant using the
// largest applicable unit pair. A zero instant renders "Unknown"; an
// instant at or before now renders "Available Now!". All divisions
// truncate.
func FormatCountdown(instant, now time.Time) string {
	if instant.IsZero() {
		return "Unknown"
	}

	diff := instant.Sub(now)
	if diff <= 0 {
		return "Available Now!"
	}

	seconds := int64(diff / time.Second)
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours%24)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatAbsolute renders the respawn instant as a short calendar time
// shown under the countdown. Zero instants render as an empty string.
func FormatAbsolute(instant time.Time) string {
	if instant.IsZero() {
		return ""
	}
	return instant.Format("Jan 2, 03:04 PM")
}
