package entity

import (
	"strings"
	"time"
)

// Boss describes a spawnable monster, either loaded from the local
// catalog or normalized from an inbound dispatch payload.
type Boss struct {
	ID           int64      `json:"id" db:"id"`
	MonsterName  string     `json:"monster_name" db:"monster_name"`
	DisplayName  string     `json:"display_name" db:"display_name"`
	Points       int64      `json:"points" db:"points"`
	Notes        string     `json:"notes" db:"notes"`
	ImageURL     string     `json:"image_url" db:"image_url"`
	RespawnAt    *time.Time `json:"respawn_at" db:"respawn_at"`
	DiedAt       *time.Time `json:"died_at" db:"died_at"`
	RespawnHours float64    `json:"respawn_hours" db:"respawn_hours"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Title returns the name used in the announcement headline.
func (b *Boss) Title() string {
	if b == nil {
		return "Unknown Boss"
	}
	if b.MonsterName != "" {
		return b.MonsterName
	}
	if b.DisplayName != "" {
		return b.DisplayName
	}
	return "Unknown Boss"
}

// BossPayload is the inbound dispatch request body. Field names follow
// the dashboard's wire format; temporal fields arrive as strings and are
// parsed during normalization so that an unparseable value degrades to
// "no basis" instead of rejecting the whole payload.
type BossPayload struct {
	Monster      string  `json:"monster"`
	Name         string  `json:"name"`
	Points       int64   `json:"points"`
	Notes        string  `json:"notes"`
	ImageURL     string  `json:"image_url"`
	DisplayImage string  `json:"display_image"`
	RespawnTime  string  `json:"respawn_time"`
	TimeOfDeath  string  `json:"time_of_death"`
	RespawnHours float64 `json:"respawn_hours"`
}

// Normalize resolves payload aliases once, at the boundary: monster/name
// and image_url/display_image fall back onto each other, and timestamps
// are parsed into concrete instants.
func (p *BossPayload) Normalize() Boss {
	monster := strings.TrimSpace(p.Monster)
	if monster == "" {
		monster = strings.TrimSpace(p.Name)
	}
	display := strings.TrimSpace(p.Name)
	if display == "" {
		display = monster
	}

	imageURL := p.ImageURL
	if imageURL == "" {
		imageURL = p.DisplayImage
	}

	return Boss{
		MonsterName:  monster,
		DisplayName:  display,
		Points:       p.Points,
		Notes:        p.Notes,
		ImageURL:     imageURL,
		RespawnAt:    parseInstant(p.RespawnTime),
		DiedAt:       parseInstant(p.TimeOfDeath),
		RespawnHours: p.RespawnHours,
	}
}

var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseInstant(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}
