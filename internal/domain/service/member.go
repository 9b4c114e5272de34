package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
	"github.com/liondance/show-manager/internal/slackboss"
)

type memberService struct {
	dm   contract.DataManager
	boss contract.SlackBoss
	log  *logrus.Entry
}

func newMember(dm contract.DataManager, boss contract.SlackBoss) *memberService {
	return &memberService{
		dm:   dm,
		boss: boss,
		log:  logrus.WithField("component", "members"),
	}
}

// CreateUser creates a login identity with its member profile and
// best-effort resolves the member's Slack identity. Members outside the
// workspace are fine; they pick up an identity on their first invite.
func (s *memberService) CreateUser(ctx context.Context, user *entity.User) (*entity.Member, error) {
	member := &entity.Member{School: -1, ClassYear: -1}

	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.User().Create(user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		member.UserID = user.ID
		if err := dm.Member().Create(member); err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.EnsureSlackUser(ctx, member); err != nil {
		s.log.WithError(err).Warnf("Failed to resolve Slack user for new member %d", member.ID)
	}
	return member, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*entity.Member, error) {
	member, err := s.dm.Member().GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}
	return member, nil
}

// DeleteMember removes the member's user; the member row and any Slack
// identity mapping cascade with it.
func (s *memberService) DeleteMember(ctx context.Context, id int64) error {
	member, err := s.dm.Member().GetByID(id)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	return s.dm.User().Delete(member.UserID)
}

// EnsureSlackUser returns the member's Slack identity, looking it up in
// the workspace and caching it on first use. Returns nil without error
// when the member has no workspace account; the lookup happens at most
// once per member that resolves.
func (s *memberService) EnsureSlackUser(ctx context.Context, member *entity.Member) (*entity.SlackUser, error) {
	slackUser, err := s.dm.SlackUser().GetByMemberID(member.ID)
	if err != nil {
		return nil, err
	}
	if slackUser != nil {
		return slackUser, nil
	}

	user, err := s.dm.User().GetByID(member.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("member %d does not have an associated user", member.ID)
	}

	id, err := s.boss.FetchUser(slackboss.ByMember(member, user))
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	slackUser = &entity.SlackUser{ID: id, MemberID: member.ID}
	if err := s.dm.SlackUser().Create(slackUser); err != nil {
		return nil, err
	}
	return slackUser, nil
}
