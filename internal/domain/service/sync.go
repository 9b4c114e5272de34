package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liondance/show-manager/internal/domain"
	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
	"github.com/liondance/show-manager/internal/slackboss"
)

// briefingDebounce is the minimum interval after a briefing post before a
// follow-up "fields updated" message is worth sending. Edits landing
// sooner are treated as part of the original post.
const briefingDebounce = 10 * time.Second

// syncService reconciles shows with their Slack channels. It decides which
// Slack operations a mutation requires and in what order; SlackBoss
// performs the individual calls.
type syncService struct {
	dm      contract.DataManager
	boss    contract.SlackBoss
	members contract.MemberService
	log     *logrus.Entry
	now     func() time.Time
}

func newSync(dm contract.DataManager, boss contract.SlackBoss, members contract.MemberService) *syncService {
	return &syncService{
		dm:      dm,
		boss:    boss,
		members: members,
		log:     logrus.WithField("component", "showsync"),
		now:     time.Now,
	}
}

// SyncShow reconciles the Slack side after a show save. prior is the
// previously persisted version (nil when the show was just created). The
// sequence is idempotent: re-running it with an unchanged show is a no-op.
func (s *syncService) SyncShow(ctx context.Context, show, prior *entity.Show) error {
	channel, err := s.dm.SlackChannel().GetByShowID(show.ID)
	if err != nil {
		return err
	}

	if !show.IsPublished() {
		if channel == nil {
			return nil
		}
		return s.archiveChannel(show, channel)
	}

	changed := diffShows(prior, show)
	pointChanged := prior != nil && prior.PointID != show.PointID
	var priorPointID int64
	if prior != nil {
		priorPointID = prior.PointID
	}

	created := false
	if channel == nil {
		id, err := s.boss.CreateChannel(slackboss.ByShow(show))
		if err != nil {
			return err
		}
		channel = &entity.SlackChannel{ID: id, ShowID: show.ID}
		if err := s.dm.SlackChannel().Create(channel); err != nil {
			return err
		}
		created = true
		s.invitePerformers(ctx, show, channel)
	}

	if !created && (fieldChanged(changed, domain.FieldName) || fieldChanged(changed, domain.FieldDate)) {
		name, err := show.DefaultChannelName()
		if err != nil {
			return err
		}
		if _, err := s.boss.RenameChannel(slackboss.ByChannel(channel, show), name, true); err != nil {
			return err
		}
	}

	if created || len(changed) > 0 {
		if err := s.sendOrUpdateBriefing(ctx, show, channel, changed); err != nil {
			return err
		}
	}

	if created || pointChanged {
		s.syncPointPerson(ctx, show, channel, priorPointID)
	}

	return nil
}

// InvitePerformer adds a newly registered performer to the show channel.
// Shows without a channel need nothing.
func (s *syncService) InvitePerformer(ctx context.Context, show *entity.Show, member *entity.Member) error {
	channel, err := s.dm.SlackChannel().GetByShowID(show.ID)
	if err != nil || channel == nil {
		return err
	}

	slackUser, err := s.members.EnsureSlackUser(ctx, member)
	if err != nil {
		return err
	}
	if slackUser == nil {
		s.log.Warnf("Member %d has no Slack identity, skipping invite", member.ID)
		return nil
	}

	return s.boss.InviteUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(slackUser))
}

// RemovePerformer removes a departing performer from the show channel.
// Only an already-cached identity is used; there is no point resolving a
// Slack user just to kick them.
func (s *syncService) RemovePerformer(ctx context.Context, show *entity.Show, memberID int64) error {
	channel, err := s.dm.SlackChannel().GetByShowID(show.ID)
	if err != nil || channel == nil {
		return err
	}

	slackUser, err := s.dm.SlackUser().GetByMemberID(memberID)
	if err != nil {
		return err
	}
	if slackUser == nil {
		return nil
	}

	return s.boss.RemoveUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(slackUser))
}

// archiveChannel renames the channel to a unique archival name and then
// archives it. The workspace cannot un-archive bot-created channels, so
// the rename keeps the default name free for a future channel of the same
// show. The mapping row is removed once the archive call succeeds.
func (s *syncService) archiveChannel(show *entity.Show, channel *entity.SlackChannel) error {
	if base, err := show.DefaultChannelName(); err == nil {
		name := slackboss.ArchiveName(base, s.now())
		if _, err := s.boss.RenameChannel(slackboss.ByChannel(channel, show), name, false); err != nil {
			return err
		}
	}

	if err := s.boss.ArchiveChannel(slackboss.ByChannel(channel, show)); err != nil {
		return err
	}

	return s.dm.SlackChannel().Delete(channel.ID)
}

// sendOrUpdateBriefing posts the briefing on first send and updates it in
// place afterwards, pinning newly created briefings. Updates landing past
// the debounce window additionally post a short change summary.
func (s *syncService) sendOrUpdateBriefing(ctx context.Context, show *entity.Show, channel *entity.SlackChannel, changed []string) error {
	blocks := slackboss.BriefingBlocks(show, s.pointLabel(ctx, show))
	priorTS := channel.BriefingTS

	ts, created, err := s.boss.SendMessage(
		slackboss.ByChannel(channel, show), channel.BriefingTS, blocks, slackboss.BriefingText(show),
	)
	if err != nil {
		return err
	}

	if created {
		if err := s.boss.PinMessage(slackboss.ByChannel(channel, show), ts); err != nil {
			return err
		}
		channel.BriefingTS = ts
		return s.dm.SlackChannel().Update(channel)
	}

	if len(changed) > 0 && s.sinceBriefing(priorTS) > briefingDebounce {
		_, _, err := s.boss.SendMessage(
			slackboss.ByChannel(channel, show), "",
			slackboss.UpdateMessageBlocks(changed), slackboss.UpdateMessageText(changed),
		)
		return err
	}

	return nil
}

// syncPointPerson swaps channel membership after a point person change:
// the previous point leaves unless they also perform, the new one joins.
// Membership failures are logged, not fatal; the briefing already names
// the new point.
func (s *syncService) syncPointPerson(ctx context.Context, show *entity.Show, channel *entity.SlackChannel, priorPointID int64) {
	if priorPointID != 0 && priorPointID != show.PointID && !s.performsIn(show.ID, priorPointID) {
		slackUser, err := s.dm.SlackUser().GetByMemberID(priorPointID)
		if err == nil && slackUser != nil {
			err = s.boss.RemoveUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(slackUser))
		}
		if err != nil {
			s.log.WithError(err).Warnf("Failed to remove previous point person %d from channel", priorPointID)
		}
	}

	if show.PointID == 0 {
		return
	}
	member, err := s.dm.Member().GetByID(show.PointID)
	if err != nil || member == nil {
		s.log.Warnf("Point person %d not found, skipping invite", show.PointID)
		return
	}
	if err := s.InvitePerformer(ctx, show, member); err != nil {
		s.log.WithError(err).Warnf("Failed to invite point person %d to channel", show.PointID)
	}
}

// invitePerformers invites every registered performer to a fresh channel.
// A failed or unresolvable invite is logged and skipped so one missing
// workspace account never blocks channel creation.
func (s *syncService) invitePerformers(ctx context.Context, show *entity.Show, channel *entity.SlackChannel) {
	performers, err := s.dm.Member().GetPerformersByShow(show.ID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to load performers for channel invites")
		return
	}

	var slackUsers []*entity.SlackUser
	for _, performer := range performers {
		slackUser, err := s.members.EnsureSlackUser(ctx, performer)
		if err != nil {
			s.log.WithError(err).Warnf("Failed to resolve Slack user for member %d", performer.ID)
			continue
		}
		if slackUser == nil {
			continue
		}
		slackUsers = append(slackUsers, slackUser)
	}
	if len(slackUsers) == 0 {
		return
	}

	if err := s.boss.InviteUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(slackUsers...)); err != nil {
		s.log.WithError(err).Warn("Failed to invite performers to new channel")
	}
}

// pointLabel renders the point person for the briefing: Slack mention when
// resolvable, plain name otherwise, empty when unassigned.
func (s *syncService) pointLabel(ctx context.Context, show *entity.Show) string {
	if show.PointID == 0 {
		return ""
	}
	member, err := s.dm.Member().GetByID(show.PointID)
	if err != nil || member == nil {
		return ""
	}

	if slackUser, err := s.members.EnsureSlackUser(ctx, member); err == nil && slackUser != nil {
		return slackUser.Mention()
	}

	user, err := s.dm.User().GetByID(member.UserID)
	if err != nil || user == nil {
		return ""
	}
	return user.FullName()
}

// sinceBriefing returns the elapsed time since the briefing with the given
// Slack ts ("<unix>.<serial>") was posted.
func (s *syncService) sinceBriefing(ts string) time.Duration {
	seconds, _, _ := strings.Cut(ts, ".")
	unix, err := strconv.ParseInt(seconds, 10, 64)
	if err != nil {
		s.log.Warnf("Unparsable briefing ts %q", ts)
		return 0
	}
	return s.now().Sub(time.Unix(unix, 0))
}

// diffShows lists the watched fields that differ between the prior and
// current versions of a show, in briefing display order.
func diffShows(prior, current *entity.Show) []string {
	if prior == nil {
		return nil
	}

	var changed []string
	if prior.Name != current.Name {
		changed = append(changed, domain.FieldName)
	}
	if !equalDates(prior.Date, current.Date) {
		changed = append(changed, domain.FieldDate)
	}
	if prior.Time != current.Time {
		changed = append(changed, domain.FieldTime)
	}
	if prior.Address != current.Address {
		changed = append(changed, domain.FieldAddress)
	}
	if prior.Lions != current.Lions {
		changed = append(changed, domain.FieldLions)
	}
	if prior.PointID != current.PointID {
		changed = append(changed, domain.FieldPoint)
	}
	return changed
}

func equalDates(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func fieldChanged(changed []string, field string) bool {
	for _, f := range changed {
		if f == field {
			return true
		}
	}
	return false
}

func (s *syncService) performsIn(showID, memberID int64) bool {
	role, err := s.dm.Role().GetByShowAndPerformer(showID, memberID)
	return err == nil && role != nil
}
