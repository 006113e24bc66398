package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossPayload_Normalize_Aliases(t *testing.T) {
	payload := &BossPayload{
		Name:         "Queen Ant",
		DisplayImage: "https://example.com/qa.png",
		Points:       60,
	}

	boss := payload.Normalize()

	// name fills in for monster, display_image for image_url
	assert.Equal(t, "Queen Ant", boss.MonsterName)
	assert.Equal(t, "Queen Ant", boss.DisplayName)
	assert.Equal(t, "https://example.com/qa.png", boss.ImageURL)
	assert.Equal(t, int64(60), boss.Points)
}

func TestBossPayload_Normalize_MonsterWins(t *testing.T) {
	payload := &BossPayload{
		Monster:  "core",
		Name:     "Core the Machine",
		ImageURL: "https://example.com/core.png",
	}

	boss := payload.Normalize()

	assert.Equal(t, "core", boss.MonsterName)
	assert.Equal(t, "Core the Machine", boss.DisplayName)
	assert.Equal(t, "https://example.com/core.png", boss.ImageURL)
}

func TestBossPayload_Normalize_ParsesTimestamps(t *testing.T) {
	payload := &BossPayload{
		Monster:      "Baium",
		RespawnTime:  "2025-06-02T10:00:00Z",
		TimeOfDeath:  "2025-06-01 22:00:00",
		RespawnHours: 12,
	}

	boss := payload.Normalize()

	require.NotNil(t, boss.RespawnAt)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), boss.RespawnAt.UTC())
	require.NotNil(t, boss.DiedAt)
	assert.Equal(t, 12.0, boss.RespawnHours)
}

func TestBossPayload_Normalize_UnparseableTimestampDropped(t *testing.T) {
	payload := &BossPayload{
		Monster:     "Baium",
		RespawnTime: "soon(tm)",
		TimeOfDeath: "",
	}

	boss := payload.Normalize()

	assert.Nil(t, boss.RespawnAt)
	assert.Nil(t, boss.DiedAt)
}

func TestBoss_Title(t *testing.T) {
	assert.Equal(t, "Unknown Boss", (*Boss)(nil).Title())
	assert.Equal(t, "Unknown Boss", (&Boss{}).Title())
	assert.Equal(t, "Zaken", (&Boss{MonsterName: "Zaken"}).Title())
	assert.Equal(t, "Pirate King", (&Boss{DisplayName: "Pirate King"}).Title())
}
