package database

import (
	"database/sql"
	"fmt"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

type memberRepo struct {
	db dbConn
}

func newMemberRepo(db dbConn) contract.MemberRepo {
	return &memberRepo{db: db}
}

const memberColumns = `id, user_id, position, school, class_year, created_at`

func (r *memberRepo) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (user_id, position, school, class_year)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		member.UserID,
		member.Position,
		nullSmall(member.School),
		nullSmall(member.ClassYear),
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *memberRepo) GetByID(id int64) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = ?`

	member, err := scanMember(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (r *memberRepo) GetByUserID(userID int64) (*entity.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE user_id = ?`

	member, err := scanMember(r.db.QueryRow(query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (r *memberRepo) GetPerformersByShow(showID int64) ([]*entity.Member, error) {
	query := `
		SELECT m.id, m.user_id, m.position, m.school, m.class_year, m.created_at
		FROM members m
		JOIN roles r ON r.performer_id = m.id
		WHERE r.show_id = ?
		ORDER BY r.id
	`

	rows, err := r.db.Query(query, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to get performers: %w", err)
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performer: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}

func (r *memberRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func scanMember(row rowScanner) (*entity.Member, error) {
	member := &entity.Member{}
	var school, classYear sql.NullInt64

	err := row.Scan(
		&member.ID,
		&member.UserID,
		&member.Position,
		&school,
		&classYear,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	member.School = intOrUnset(school)
	member.ClassYear = intOrUnset(classYear)
	return member, nil
}

func intOrUnset(v sql.NullInt64) int {
	if !v.Valid {
		return -1
	}
	return int(v.Int64)
}
