package database

import (
	"testing"
	"time"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRepo_CreateAndGet(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDispatchRepo(db.conn)

	record := &entity.DispatchRecord{
		MessageID:   "1700000000.000100",
		ChannelID:   "C123456789",
		MonsterName: "Valakas",
		SentAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	err := repo.Create(record)
	require.NoError(t, err, "Failed to create dispatch record")
	assert.NotZero(t, record.ID)

	found, err := repo.GetByMessageID("1700000000.000100")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Valakas", found.MonsterName)
	assert.Equal(t, "C123456789", found.ChannelID)

	notFound, err := repo.GetByMessageID("0.0")
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestDispatchRepo_ListRecent(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDispatchRepo(db.conn)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(&entity.DispatchRecord{
			MessageID:   time.Duration(i).String(),
			ChannelID:   "C123456789",
			MonsterName: "Baium",
			SentAt:      base.Add(time.Duration(i) * time.Hour),
		}))
	}

	records, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first
	assert.True(t, records[0].SentAt.After(records[1].SentAt))
}

func TestDispatchRepo_CountSince(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newDispatchRepo(db.conn)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&entity.DispatchRecord{
		MessageID: "old", ChannelID: "C1", MonsterName: "Zaken", SentAt: base.Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.Create(&entity.DispatchRecord{
		MessageID: "new", ChannelID: "C1", MonsterName: "Zaken", SentAt: base,
	}))

	count, err := repo.CountSince(base.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
