package database

import (
	"database/sql"
	"fmt"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

type roundRepo struct {
	db dbConn
}

func newRoundRepo(db dbConn) contract.RoundRepo {
	return &roundRepo{db: db}
}

func (r *roundRepo) Create(round *entity.Round) error {
	query := `INSERT INTO rounds (show_id, time) VALUES (?, ?)`

	result, err := r.db.Exec(query, round.ShowID, round.Time)
	if err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	round.ID = id
	return nil
}

func (r *roundRepo) GetByID(id int64) (*entity.Round, error) {
	round := &entity.Round{}
	query := `SELECT id, show_id, time FROM rounds WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(&round.ID, &round.ShowID, &round.Time)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get round: %w", err)
	}

	return round, nil
}

func (r *roundRepo) GetByShow(showID int64) ([]*entity.Round, error) {
	query := `SELECT id, show_id, time FROM rounds WHERE show_id = ? ORDER BY time`

	rows, err := r.db.Query(query, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rounds: %w", err)
	}
	defer rows.Close()

	var rounds []*entity.Round
	for rows.Next() {
		round := &entity.Round{}
		if err := rows.Scan(&round.ID, &round.ShowID, &round.Time); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, round)
	}

	return rounds, rows.Err()
}

// MinTime returns the earliest round time for a show, or "" when the show
// has no rounds. Times are zero-padded "HH:MM" strings so MIN() is correct.
func (r *roundRepo) MinTime(showID int64) (string, error) {
	var min sql.NullString
	query := `SELECT MIN(time) FROM rounds WHERE show_id = ?`

	if err := r.db.QueryRow(query, showID).Scan(&min); err != nil {
		return "", fmt.Errorf("failed to get min round time: %w", err)
	}

	return min.String, nil
}

func (r *roundRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM rounds WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return nil
}
