package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liondance/show-manager/internal/domain"
	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

// DateLayout is the wire format for show dates.
const DateLayout = "2006-01-02"

var (
	ErrShowNotFound   = errors.New("show not found")
	ErrRoundNotFound  = errors.New("round not found")
	ErrRoleNotFound   = errors.New("performer is not registered for this show")
	ErrMemberNotFound = errors.New("member not found")
	ErrDateRequired   = errors.New("cannot publish show until date is set")
)

type showService struct {
	dm   contract.DataManager
	sync *syncService
	log  *logrus.Entry
}

func newShow(dm contract.DataManager, sync *syncService) contract.ShowService {
	return &showService{
		dm:   dm,
		sync: sync,
		log:  logrus.WithField("component", "shows"),
	}
}

func (s *showService) CreateShow(ctx context.Context, input contract.ShowInput) (*entity.Show, error) {
	show := &entity.Show{}
	if err := applyInput(show, input); err != nil {
		return nil, err
	}
	if err := validateShow(show); err != nil {
		return nil, err
	}

	if err := s.dm.Show().Create(show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	if err := s.sync.SyncShow(ctx, show, nil); err != nil {
		return nil, err
	}
	return show, nil
}

func (s *showService) GetShow(ctx context.Context, id int64) (*contract.ShowDetails, error) {
	show, err := s.dm.Show().GetByID(id)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	performers, err := s.dm.Member().GetPerformersByShow(id)
	if err != nil {
		return nil, err
	}
	channel, err := s.dm.SlackChannel().GetByShowID(id)
	if err != nil {
		return nil, err
	}

	return &contract.ShowDetails{
		Show:            show,
		Performers:      performers,
		PerformerCount:  len(performers),
		HasSlackChannel: channel != nil,
	}, nil
}

func (s *showService) ListShows(ctx context.Context) ([]*entity.Show, error) {
	return s.dm.Show().GetAll()
}

func (s *showService) UpdateShow(ctx context.Context, id int64, input contract.ShowInput) (*entity.Show, error) {
	prior, err := s.dm.Show().GetByID(id)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, ErrShowNotFound
	}

	show := *prior
	if err := applyInput(&show, input); err != nil {
		return nil, err
	}
	if err := validateShow(&show); err != nil {
		return nil, err
	}

	if err := s.dm.Show().Update(&show); err != nil {
		return nil, fmt.Errorf("failed to update show: %w", err)
	}

	if err := s.sync.SyncShow(ctx, &show, prior); err != nil {
		return nil, err
	}
	return &show, nil
}

func (s *showService) PublishShow(ctx context.Context, id int64) (*entity.Show, error) {
	return s.setStatus(ctx, id, domain.StatusPublished)
}

func (s *showService) UnpublishShow(ctx context.Context, id int64) (*entity.Show, error) {
	return s.setStatus(ctx, id, domain.StatusDraft)
}

func (s *showService) CloseShow(ctx context.Context, id int64) (*entity.Show, error) {
	return s.setStatus(ctx, id, domain.StatusClosed)
}

func (s *showService) setStatus(ctx context.Context, id int64, status int) (*entity.Show, error) {
	prior, err := s.dm.Show().GetByID(id)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, ErrShowNotFound
	}

	show := *prior
	show.Status = status
	if err := validateShow(&show); err != nil {
		return nil, err
	}

	if err := s.dm.Show().Update(&show); err != nil {
		return nil, fmt.Errorf("failed to update show status: %w", err)
	}

	if err := s.sync.SyncShow(ctx, &show, prior); err != nil {
		return nil, err
	}
	return &show, nil
}

// DeleteShow forces the show back to draft before removal so the channel
// archive runs through the same path as an unpublish.
func (s *showService) DeleteShow(ctx context.Context, id int64) error {
	prior, err := s.dm.Show().GetByID(id)
	if err != nil {
		return err
	}
	if prior == nil {
		return ErrShowNotFound
	}

	show := *prior
	if show.Status != domain.StatusDraft {
		show.Status = domain.StatusDraft
		if err := s.dm.Show().Update(&show); err != nil {
			return fmt.Errorf("failed to revert show to draft: %w", err)
		}
	}
	if err := s.sync.SyncShow(ctx, &show, prior); err != nil {
		return err
	}

	return s.dm.Show().Delete(id)
}

func (s *showService) AddRound(ctx context.Context, showID int64, clock string) (*entity.Round, error) {
	if _, err := time.Parse(entity.ClockLayout, clock); err != nil {
		return nil, fmt.Errorf("invalid round time %q, use HH:MM", clock)
	}

	show, err := s.dm.Show().GetByID(showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrShowNotFound
	}

	round := &entity.Round{ShowID: showID, Time: clock}
	if err := s.dm.Round().Create(round); err != nil {
		return nil, err
	}

	if err := s.recomputeShowTime(ctx, showID); err != nil {
		return nil, err
	}
	return round, nil
}

func (s *showService) RemoveRound(ctx context.Context, roundID int64) error {
	round, err := s.dm.Round().GetByID(roundID)
	if err != nil {
		return err
	}
	if round == nil {
		return ErrRoundNotFound
	}

	if err := s.dm.Round().Delete(roundID); err != nil {
		return err
	}

	return s.recomputeShowTime(ctx, round.ShowID)
}

// recomputeShowTime keeps the derived show time equal to the earliest
// round time, syncing the channel briefing when it moves.
func (s *showService) recomputeShowTime(ctx context.Context, showID int64) error {
	show, err := s.dm.Show().GetByID(showID)
	if err != nil {
		return err
	}
	if show == nil {
		return ErrShowNotFound
	}

	min, err := s.dm.Round().MinTime(showID)
	if err != nil {
		return err
	}
	if show.Time == min {
		return nil
	}

	prior := *show
	show.Time = min
	if err := s.dm.Show().Update(show); err != nil {
		return fmt.Errorf("failed to update show time: %w", err)
	}

	return s.sync.SyncShow(ctx, show, &prior)
}

func (s *showService) AddRole(ctx context.Context, showID, performerID int64, roleType int) (*entity.Role, error) {
	show, err := s.dm.Show().GetByID(showID)
	if err != nil {
		return nil, err
	}
	if show == nil {
		return nil, ErrShowNotFound
	}
	member, err := s.dm.Member().GetByID(performerID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	role := &entity.Role{ShowID: showID, PerformerID: performerID, RoleType: roleType}
	if err := s.dm.Role().Create(role); err != nil {
		return nil, err
	}

	if err := s.sync.InvitePerformer(ctx, show, member); err != nil {
		s.log.WithError(err).Warnf("Failed to invite performer %d to show %d channel", performerID, showID)
	}
	return role, nil
}

func (s *showService) RemoveRole(ctx context.Context, showID, performerID int64) error {
	show, err := s.dm.Show().GetByID(showID)
	if err != nil {
		return err
	}
	if show == nil {
		return ErrShowNotFound
	}

	role, err := s.dm.Role().GetByShowAndPerformer(showID, performerID)
	if err != nil {
		return err
	}
	if role == nil {
		return ErrRoleNotFound
	}

	if err := s.dm.Role().Delete(role.ID); err != nil {
		return err
	}

	if err := s.sync.RemovePerformer(ctx, show, performerID); err != nil {
		s.log.WithError(err).Warnf("Failed to remove performer %d from show %d channel", performerID, showID)
	}
	return nil
}

func applyInput(show *entity.Show, input contract.ShowInput) error {
	show.Name = input.Name
	show.Address = input.Address
	show.IsCampus = input.IsCampus
	show.Lions = input.Lions
	show.PointID = input.PointID
	show.ContactID = input.ContactID
	show.Status = input.Status
	show.Priority = input.Priority

	if input.Date == "" {
		show.Date = nil
		return nil
	}
	date, err := time.Parse(DateLayout, input.Date)
	if err != nil {
		return fmt.Errorf("invalid show date %q, use YYYY-MM-DD", input.Date)
	}
	show.Date = &date
	return nil
}

func validateShow(show *entity.Show) error {
	if show.IsPublished() && show.Date == nil {
		return ErrDateRequired
	}
	return nil
}
