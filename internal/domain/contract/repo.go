package contract

import (
	"context"

	"github.com/liondance/show-manager/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Show() ShowRepo
	Round() RoundRepo
	Role() RoleRepo
	Member() MemberRepo
	User() UserRepo
	Contact() ContactRepo
	SlackChannel() SlackChannelRepo
	SlackUser() SlackUserRepo
}

// ShowRepo defines the contract for the show repository
type ShowRepo interface {
	Create(show *entity.Show) error
	GetByID(id int64) (*entity.Show, error)
	GetAll() ([]*entity.Show, error)
	Update(show *entity.Show) error
	Delete(id int64) error
}

// RoundRepo defines the contract for the round repository
type RoundRepo interface {
	Create(round *entity.Round) error
	GetByID(id int64) (*entity.Round, error)
	GetByShow(showID int64) ([]*entity.Round, error)
	MinTime(showID int64) (string, error)
	Delete(id int64) error
}

// RoleRepo defines the contract for the role repository
type RoleRepo interface {
	Create(role *entity.Role) error
	GetByShowAndPerformer(showID, performerID int64) (*entity.Role, error)
	GetByShow(showID int64) ([]*entity.Role, error)
	Delete(id int64) error
}

// MemberRepo defines the contract for the member repository
type MemberRepo interface {
	Create(member *entity.Member) error
	GetByID(id int64) (*entity.Member, error)
	GetByUserID(userID int64) (*entity.Member, error)
	GetPerformersByShow(showID int64) ([]*entity.Member, error)
	Delete(id int64) error
}

// UserRepo defines the contract for the user repository
type UserRepo interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	Delete(id int64) error
}

// ContactRepo defines the contract for the contact repository
type ContactRepo interface {
	Create(contact *entity.Contact) error
	GetByID(id int64) (*entity.Contact, error)
}

// SlackChannelRepo defines the contract for the Slack channel mapping.
// show_id is unique: at most one channel may ever exist per show.
type SlackChannelRepo interface {
	Create(channel *entity.SlackChannel) error
	GetByShowID(showID int64) (*entity.SlackChannel, error)
	Update(channel *entity.SlackChannel) error
	Delete(id string) error
}

// SlackUserRepo defines the contract for the Slack user mapping.
// member_id is unique: at most one Slack identity per member.
type SlackUserRepo interface {
	Create(user *entity.SlackUser) error
	GetByMemberID(memberID int64) (*entity.SlackUser, error)
	Delete(id string) error
}
