package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/contract"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

type dispatchRepo struct {
	db dbConn
}

func newDispatchRepo(db dbConn) contract.DispatchRepo {
	return &dispatchRepo{db: db}
}

func (r *dispatchRepo) Create(record *entity.DispatchRecord) error {
	query := `
		INSERT INTO dispatches (message_id, channel_id, monster_name, sent_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		record.MessageID,
		record.ChannelID,
		record.MonsterName,
		record.SentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dispatch record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	record.ID = id
	return nil
}

func (r *dispatchRepo) GetByMessageID(messageID string) (*entity.DispatchRecord, error) {
	record := &entity.DispatchRecord{}
	query := `
		SELECT id, message_id, channel_id, monster_name, sent_at
		FROM dispatches
		WHERE message_id = ?
	`

	err := r.db.QueryRow(query, messageID).Scan(
		&record.ID,
		&record.MessageID,
		&record.ChannelID,
		&record.MonsterName,
		&record.SentAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatch record: %w", err)
	}

	return record, nil
}

func (r *dispatchRepo) ListRecent(limit int) ([]*entity.DispatchRecord, error) {
	query := `
		SELECT id, message_id, channel_id, monster_name, sent_at
		FROM dispatches
		ORDER BY sent_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list dispatch records: %w", err)
	}
	defer rows.Close()

	var records []*entity.DispatchRecord
	for rows.Next() {
		record := &entity.DispatchRecord{}
		err := rows.Scan(
			&record.ID,
			&record.MessageID,
			&record.ChannelID,
			&record.MonsterName,
			&record.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan dispatch record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *dispatchRepo) CountSince(since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM dispatches WHERE sent_at >= ?`

	if err := r.db.QueryRow(query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count dispatch records: %w", err)
	}
	return count, nil
}
