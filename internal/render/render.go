// Package render builds the announcement content shown in the channel.
// The content is always rebuilt in full from the boss record and a
// participation snapshot, never patched incrementally, so the displayed
// message is a pure function of current state.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/hunterwatch/boss-alert-bot/internal/domain"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
	"github.com/hunterwatch/boss-alert-bot/internal/participation"
	"github.com/hunterwatch/boss-alert-bot/internal/respawn"
)

const (
	announcementColor = "#FF6B35"
	footerText        = "React with :white_check_mark: to participate or :x: to skip this boss • Updates in real-time"
	descriptionText   = "A boss is ready for hunting! React below to indicate your participation."
)

// Announcement renders the full message attachment for a boss and its
// participation snapshot. A nil boss renders the fallback descriptive
// fields, which happens when a tracked message was never dispatched by
// this process.
func Announcement(boss *entity.Boss, snap participation.Snapshot, now time.Time) slack.Attachment {
	fields := []slack.AttachmentField{
		{
			Title: ":japanese_ogre: Boss Name",
			Value: boss.Title(),
			Short: true,
		},
		{
			Title: ":alarm_clock: Respawn Time",
			Value: respawnValue(boss, now),
			Short: true,
		},
		{
			Title: ":moneybag: Points",
			Value: pointsValue(boss),
			Short: true,
		},
		{
			Title: ":memo: Notes",
			Value: notesValue(boss),
			Short: false,
		},
		{
			Title: ":busts_in_silhouette: Participation Status",
			Value: participationValue(snap),
			Short: false,
		},
		{
			Title: ":bar_chart: Quick Stats",
			Value: statsValue(snap),
			Short: false,
		},
	}

	att := slack.Attachment{
		Color:  announcementColor,
		Title:  fmt.Sprintf(":fire: Boss Alert: %s", boss.Title()),
		Text:   descriptionText,
		Fields: fields,
		Footer: footerText,
	}
	if boss != nil && boss.ImageURL != "" {
		att.ThumbURL = boss.ImageURL
	}
	return att
}

func respawnValue(boss *entity.Boss, now time.Time) string {
	instant, ok := respawn.ResolveInstant(boss, now)
	if !ok {
		return respawn.FormatCountdown(time.Time{}, now)
	}
	value := respawn.FormatCountdown(instant, now)
	if absolute := respawn.FormatAbsolute(instant); absolute != "" {
		value += "\n" + absolute
	}
	return value
}

func pointsValue(boss *entity.Boss) string {
	if boss == nil || boss.Points <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d pts", boss.Points)
}

func notesValue(boss *entity.Boss) string {
	if boss == nil || boss.Notes == "" {
		return "No additional notes"
	}
	return boss.Notes
}

func participationValue(snap participation.Snapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(":white_check_mark: *Participating (%d):*\n", len(snap.Participating)))
	b.WriteString(nameList(snap.Participating))
	b.WriteString(fmt.Sprintf("\n\n:x: *Not Participating (%d):*\n", len(snap.NotParticipating)))
	b.WriteString(nameList(snap.NotParticipating))
	return b.String()
}

func nameList(users []string) string {
	if len(users) == 0 {
		return "_No one yet_"
	}
	if len(users) <= domain.MaxNamesShown {
		return strings.Join(users, ", ")
	}
	shown := strings.Join(users[:domain.MaxNamesShown], ", ")
	return fmt.Sprintf("%s and %d more...", shown, len(users)-domain.MaxNamesShown)
}

func statsValue(snap participation.Snapshot) string {
	participating, notParticipating := snap.Summary()
	total := participating + notParticipating
	rate := 0
	if total > 0 {
		rate = int(math.Round(100 * float64(participating) / float64(total)))
	}
	return fmt.Sprintf("*Total Responses:* %d\n*Participation Rate:* %d%%", total, rate)
}
