package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

type showRepo struct {
	db dbConn
}

func newShowRepo(db dbConn) contract.ShowRepo {
	return &showRepo{db: db}
}

const showColumns = `
	id, name, date, time, address, is_campus, lions,
	point_id, contact_id, status, priority, created_at, updated_at
`

func (r *showRepo) Create(show *entity.Show) error {
	query := `
		INSERT INTO shows (name, date, time, address, is_campus, lions, point_id, contact_id, status, priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		show.Name,
		nullTime(show.Date),
		nullString(show.Time),
		show.Address,
		show.IsCampus,
		show.Lions,
		nullID(show.PointID),
		nullID(show.ContactID),
		show.Status,
		show.Priority,
	)
	if err != nil {
		return fmt.Errorf("failed to create show: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	show.ID = id
	return nil
}

func (r *showRepo) GetByID(id int64) (*entity.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows WHERE id = ?`

	show, err := scanShow(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get show: %w", err)
	}

	return show, nil
}

func (r *showRepo) GetAll() ([]*entity.Show, error) {
	query := `SELECT ` + showColumns + ` FROM shows ORDER BY date, time`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get shows: %w", err)
	}
	defer rows.Close()

	var shows []*entity.Show
	for rows.Next() {
		show, err := scanShow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}
		shows = append(shows, show)
	}

	return shows, rows.Err()
}

func (r *showRepo) Update(show *entity.Show) error {
	query := `
		UPDATE shows SET
			name = ?,
			date = ?,
			time = ?,
			address = ?,
			is_campus = ?,
			lions = ?,
			point_id = ?,
			contact_id = ?,
			status = ?,
			priority = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		show.Name,
		nullTime(show.Date),
		nullString(show.Time),
		show.Address,
		show.IsCampus,
		show.Lions,
		nullID(show.PointID),
		nullID(show.ContactID),
		show.Status,
		show.Priority,
		time.Now(),
		show.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update show: %w", err)
	}

	return nil
}

func (r *showRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM shows WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete show: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShow(row rowScanner) (*entity.Show, error) {
	show := &entity.Show{}
	var (
		date      sql.NullTime
		clock     sql.NullString
		pointID   sql.NullInt64
		contactID sql.NullInt64
	)

	err := row.Scan(
		&show.ID,
		&show.Name,
		&date,
		&clock,
		&show.Address,
		&show.IsCampus,
		&show.Lions,
		&pointID,
		&contactID,
		&show.Status,
		&show.Priority,
		&show.CreatedAt,
		&show.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if date.Valid {
		d := date.Time
		show.Date = &d
	}
	show.Time = clock.String
	show.PointID = pointID.Int64
	show.ContactID = contactID.Int64
	return show, nil
}

func nullTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}

func nullSmall(v int) interface{} {
	if v < 0 {
		return nil
	}
	return v
}
