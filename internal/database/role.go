package database

import (
	"database/sql"
	"fmt"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

type roleRepo struct {
	db dbConn
}

func newRoleRepo(db dbConn) contract.RoleRepo {
	return &roleRepo{db: db}
}

func (r *roleRepo) Create(role *entity.Role) error {
	query := `INSERT INTO roles (show_id, performer_id, role_type) VALUES (?, ?, ?)`

	result, err := r.db.Exec(query, role.ShowID, role.PerformerID, nullSmall(role.RoleType))
	if err != nil {
		return fmt.Errorf("failed to create role: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	role.ID = id
	return nil
}

func (r *roleRepo) GetByShowAndPerformer(showID, performerID int64) (*entity.Role, error) {
	query := `
		SELECT id, show_id, performer_id, role_type
		FROM roles
		WHERE show_id = ? AND performer_id = ?
	`

	role, err := scanRole(r.db.QueryRow(query, showID, performerID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return role, nil
}

func (r *roleRepo) GetByShow(showID int64) ([]*entity.Role, error) {
	query := `
		SELECT id, show_id, performer_id, role_type
		FROM roles
		WHERE show_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, showID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	defer rows.Close()

	var roles []*entity.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

func (r *roleRepo) Delete(id int64) error {
	if _, err := r.db.Exec(`DELETE FROM roles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func scanRole(row rowScanner) (*entity.Role, error) {
	role := &entity.Role{}
	var roleType sql.NullInt64

	if err := row.Scan(&role.ID, &role.ShowID, &role.PerformerID, &roleType); err != nil {
		return nil, err
	}

	role.RoleType = int(roleType.Int64)
	if !roleType.Valid {
		role.RoleType = -1
	}
	return role, nil
}
