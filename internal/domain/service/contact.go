package service

import (
	"context"
	"errors"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

var ErrContactNotFound = errors.New("contact not found")

type contactService struct {
	dm contract.DataManager
}

func newContact(dm contract.DataManager) contract.ContactService {
	return &contactService{dm: dm}
}

func (s *contactService) CreateContact(ctx context.Context, contact *entity.Contact) error {
	return s.dm.Contact().Create(contact)
}

func (s *contactService) GetContact(ctx context.Context, id int64) (*entity.Contact, error) {
	contact, err := s.dm.Contact().GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}
