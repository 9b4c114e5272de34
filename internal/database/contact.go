package database

import (
	"database/sql"
	"fmt"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

type contactRepo struct {
	db dbConn
}

func newContactRepo(db dbConn) contract.ContactRepo {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(contact *entity.Contact) error {
	query := `INSERT INTO contacts (first_name, last_name, phone, email) VALUES (?, ?, ?, ?)`

	result, err := r.db.Exec(query,
		contact.FirstName,
		contact.LastName,
		contact.Phone,
		contact.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	contact.ID = id
	return nil
}

func (r *contactRepo) GetByID(id int64) (*entity.Contact, error) {
	contact := &entity.Contact{}
	query := `SELECT id, first_name, last_name, phone, email FROM contacts WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.LastName,
		&contact.Phone,
		&contact.Email,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}
