package contract

import (
	"context"

	"github.com/liondance/show-manager/internal/domain/entity"
)

// ShowInput carries the writable show fields for create and update calls.
// Time is absent: it is derived from the show's rounds.
type ShowInput struct {
	Name      string
	Date      string // "2006-01-02", empty = TBD
	Address   string
	IsCampus  bool
	Lions     int
	PointID   int64
	ContactID int64
	Status    int
	Priority  int
}

// ShowDetails is a show with the aggregates the read path exposes.
type ShowDetails struct {
	Show            *entity.Show
	Performers      []*entity.Member
	PerformerCount  int
	HasSlackChannel bool
}

// ShowService is the explicit write-path for shows. Each mutation persists
// the record and synchronizes the show's Slack channel in one sequence.
type ShowService interface {
	CreateShow(ctx context.Context, input ShowInput) (*entity.Show, error)
	GetShow(ctx context.Context, id int64) (*ShowDetails, error)
	ListShows(ctx context.Context) ([]*entity.Show, error)
	UpdateShow(ctx context.Context, id int64, input ShowInput) (*entity.Show, error)
	PublishShow(ctx context.Context, id int64) (*entity.Show, error)
	UnpublishShow(ctx context.Context, id int64) (*entity.Show, error)
	CloseShow(ctx context.Context, id int64) (*entity.Show, error)
	DeleteShow(ctx context.Context, id int64) error
	AddRound(ctx context.Context, showID int64, clock string) (*entity.Round, error)
	RemoveRound(ctx context.Context, roundID int64) error
	AddRole(ctx context.Context, showID, performerID int64, roleType int) (*entity.Role, error)
	RemoveRole(ctx context.Context, showID, performerID int64) error
}

// MemberService manages users, members, and their Slack identities.
type MemberService interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.Member, error)
	GetMember(ctx context.Context, id int64) (*entity.Member, error)
	DeleteMember(ctx context.Context, id int64) error
	EnsureSlackUser(ctx context.Context, member *entity.Member) (*entity.SlackUser, error)
}

// ContactService manages client contacts.
type ContactService interface {
	CreateContact(ctx context.Context, contact *entity.Contact) error
	GetContact(ctx context.Context, id int64) (*entity.Contact, error)
}
