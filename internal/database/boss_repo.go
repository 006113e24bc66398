package database

import (
	"database/sql"
	"fmt"

	"github.com/hunterwatch/boss-alert-bot/internal/domain/contract"
	"github.com/hunterwatch/boss-alert-bot/internal/domain/entity"
)

type bossRepo struct {
	db dbConn
}

func newBossRepo(db dbConn) contract.BossRepo {
	return &bossRepo{db: db}
}

func (r *bossRepo) Create(boss *entity.Boss) error {
	query := `
		INSERT INTO bosses (monster_name, display_name, points, notes, image_url,
			respawn_at, died_at, respawn_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		boss.MonsterName,
		boss.DisplayName,
		boss.Points,
		boss.Notes,
		boss.ImageURL,
		boss.RespawnAt,
		boss.DiedAt,
		boss.RespawnHours,
	)
	if err != nil {
		return fmt.Errorf("failed to create boss: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	boss.ID = id
	return nil
}

func (r *bossRepo) GetByMonsterName(monsterName string) (*entity.Boss, error) {
	query := `
		SELECT id, monster_name, display_name, points, notes, image_url,
			respawn_at, died_at, respawn_hours, created_at, updated_at
		FROM bosses
		WHERE monster_name = ?
	`

	return r.scanBoss(r.db.QueryRow(query, monsterName))
}

func (r *bossRepo) GetByID(id int64) (*entity.Boss, error) {
	query := `
		SELECT id, monster_name, display_name, points, notes, image_url,
			respawn_at, died_at, respawn_hours, created_at, updated_at
		FROM bosses
		WHERE id = ?
	`

	return r.scanBoss(r.db.QueryRow(query, id))
}

func (r *bossRepo) Update(boss *entity.Boss) error {
	query := `
		UPDATE bosses
		SET display_name = ?, points = ?, notes = ?, image_url = ?,
			respawn_at = ?, died_at = ?, respawn_hours = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		boss.DisplayName,
		boss.Points,
		boss.Notes,
		boss.ImageURL,
		boss.RespawnAt,
		boss.DiedAt,
		boss.RespawnHours,
		boss.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update boss: %w", err)
	}

	return nil
}

func (r *bossRepo) List() ([]*entity.Boss, error) {
	query := `
		SELECT id, monster_name, display_name, points, notes, image_url,
			respawn_at, died_at, respawn_hours, created_at, updated_at
		FROM bosses
		ORDER BY monster_name
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bosses: %w", err)
	}
	defer rows.Close()

	var bosses []*entity.Boss
	for rows.Next() {
		boss, err := scanBossRow(rows)
		if err != nil {
			return nil, err
		}
		bosses = append(bosses, boss)
	}
	return bosses, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *bossRepo) scanBoss(row *sql.Row) (*entity.Boss, error) {
	boss, err := scanBossRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return boss, nil
}

func scanBossRow(row rowScanner) (*entity.Boss, error) {
	boss := &entity.Boss{}

	var respawnAt, diedAt sql.NullTime
	err := row.Scan(
		&boss.ID,
		&boss.MonsterName,
		&boss.DisplayName,
		&boss.Points,
		&boss.Notes,
		&boss.ImageURL,
		&respawnAt,
		&diedAt,
		&boss.RespawnHours,
		&boss.CreatedAt,
		&boss.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan boss: %w", err)
	}

	if respawnAt.Valid {
		t := respawnAt.Time
		boss.RespawnAt = &t
	}
	if diedAt.Valid {
		t := diedAt.Time
		boss.DiedAt = &t
	}
	return boss, nil
}
