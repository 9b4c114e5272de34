package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/liondance/show-manager/internal/domain"
	"github.com/liondance/show-manager/internal/domain/entity"
	"github.com/liondance/show-manager/internal/slackboss"
	"github.com/liondance/show-manager/mocks"
)

type syncFixture struct {
	sync     *syncService
	boss     *mocks.MockSlackBoss
	members  *mocks.MockMemberService
	channels *mocks.MockSlackChannelRepo
	slackers *mocks.MockSlackUserRepo
	memRepo  *mocks.MockMemberRepo
	userRepo *mocks.MockUserRepo
	roleRepo *mocks.MockRoleRepo
	now      time.Time
}

func newSyncFixture(t *testing.T) *syncFixture {
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		boss:     mocks.NewMockSlackBoss(ctrl),
		members:  mocks.NewMockMemberService(ctrl),
		channels: mocks.NewMockSlackChannelRepo(ctrl),
		slackers: mocks.NewMockSlackUserRepo(ctrl),
		memRepo:  mocks.NewMockMemberRepo(ctrl),
		userRepo: mocks.NewMockUserRepo(ctrl),
		roleRepo: mocks.NewMockRoleRepo(ctrl),
		now:      time.Unix(1658300060, 0),
	}

	dm := mocks.NewMockDataManager(ctrl)
	dm.EXPECT().SlackChannel().Return(f.channels).AnyTimes()
	dm.EXPECT().SlackUser().Return(f.slackers).AnyTimes()
	dm.EXPECT().Member().Return(f.memRepo).AnyTimes()
	dm.EXPECT().User().Return(f.userRepo).AnyTimes()
	dm.EXPECT().Role().Return(f.roleRepo).AnyTimes()

	f.sync = newSync(dm, f.boss, f.members)
	f.sync.now = func() time.Time { return f.now }
	return f
}

func publishedShow() *entity.Show {
	date := time.Date(2022, time.July, 20, 0, 0, 0, 0, time.UTC)
	return &entity.Show{
		ID:     1,
		Name:   "National Hot Dog Day",
		Date:   &date,
		Time:   "14:30",
		Status: domain.StatusPublished,
	}
}

func TestSyncShowCreatesChannelAndInvitesPerformers(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()

	performers := []*entity.Member{{ID: 1}, {ID: 2}, {ID: 3}}
	slackUsers := []*entity.SlackUser{
		{ID: "U1", MemberID: 1},
		{ID: "U2", MemberID: 2},
		{ID: "U3", MemberID: 3},
	}
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(nil, nil)
	f.boss.EXPECT().CreateChannel(slackboss.ByShow(show)).Return("C1", nil)
	f.channels.EXPECT().Create(channel).Return(nil)

	f.memRepo.EXPECT().GetPerformersByShow(int64(1)).Return(performers, nil)
	for i, performer := range performers {
		f.members.EXPECT().EnsureSlackUser(gomock.Any(), performer).Return(slackUsers[i], nil)
	}
	f.boss.EXPECT().
		InviteUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(slackUsers...)).
		Return(nil)

	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), "", gomock.Any(), "New show on 07/20").
		Return("1658300000.000100", true, nil)
	f.boss.EXPECT().PinMessage(slackboss.ByChannel(channel, show), "1658300000.000100").Return(nil)
	f.channels.EXPECT().Update(gomock.Any()).DoAndReturn(func(c *entity.SlackChannel) error {
		assert.Equal(t, "1658300000.000100", c.BriefingTS)
		return nil
	})

	require.NoError(t, f.sync.SyncShow(context.Background(), show, nil))
}

func TestSyncShowChannelCreationSurvivesFailedInvites(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()

	performers := []*entity.Member{{ID: 1}, {ID: 2}}
	resolved := &entity.SlackUser{ID: "U2", MemberID: 2}
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(nil, nil)
	f.boss.EXPECT().CreateChannel(slackboss.ByShow(show)).Return("C1", nil)
	f.channels.EXPECT().Create(channel).Return(nil)

	// One performer fails to resolve and the bulk invite itself fails; the
	// channel and its briefing must still go out.
	f.memRepo.EXPECT().GetPerformersByShow(int64(1)).Return(performers, nil)
	f.members.EXPECT().EnsureSlackUser(gomock.Any(), performers[0]).
		Return(nil, errors.New("lookup failed"))
	f.members.EXPECT().EnsureSlackUser(gomock.Any(), performers[1]).Return(resolved, nil)
	f.boss.EXPECT().
		InviteUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(resolved)).
		Return(&slackboss.APIError{Op: "conversations.invite", Code: "ratelimited"})

	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), "", gomock.Any(), "New show on 07/20").
		Return("1658300000.000100", true, nil)
	f.boss.EXPECT().PinMessage(slackboss.ByChannel(channel, show), "1658300000.000100").Return(nil)
	f.channels.EXPECT().Update(gomock.Any()).Return(nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, nil))
}

func TestSyncShowUnpublishRenamesBeforeArchiving(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()
	show.Status = domain.StatusDraft
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: "1658200000.000100"}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)

	archived := slackboss.ArchiveName("07-20-national-hot-dog-day", f.now)
	gomock.InOrder(
		f.boss.EXPECT().
			RenameChannel(slackboss.ByChannel(channel, show), archived, false).
			Return("C1", nil),
		f.boss.EXPECT().ArchiveChannel(slackboss.ByChannel(channel, show)).Return(nil),
		f.channels.EXPECT().Delete("C1").Return(nil),
	)

	prior := publishedShow()
	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestSyncShowDraftWithoutChannelIsNoOp(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()
	show.Status = domain.StatusDraft

	f.channels.EXPECT().GetByShowID(int64(1)).Return(nil, nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, nil))
}

func TestSyncShowAddressChangeUpdatesBriefingInPlace(t *testing.T) {
	f := newSyncFixture(t)
	prior := publishedShow()
	show := publishedShow()
	show.Address = "123 Main St"

	// Briefing posted 5s ago: inside the debounce window, no follow-up.
	briefingTS := fmt.Sprintf("%d.000100", f.now.Unix()-5)
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: briefingTS}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)
	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), briefingTS, gomock.Any(), "New show on 07/20").
		Return(briefingTS, false, nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestSyncShowLateChangePostsFollowUp(t *testing.T) {
	f := newSyncFixture(t)
	prior := publishedShow()
	show := publishedShow()
	show.Address = "123 Main St"
	show.Lions = 3

	briefingTS := fmt.Sprintf("%d.000100", f.now.Unix()-60)
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: briefingTS}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)
	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), briefingTS, gomock.Any(), "New show on 07/20").
		Return(briefingTS, false, nil)
	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), "", gomock.Any(),
			"<!channel> The address and the lions have been updated.").
		Return("1658300061.000100", true, nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestSyncShowNameChangeRenamesChannel(t *testing.T) {
	f := newSyncFixture(t)
	prior := publishedShow()
	show := publishedShow()
	show.Name = "Hot Dog Festival"

	briefingTS := fmt.Sprintf("%d.000100", f.now.Unix()-5)
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: briefingTS}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)
	f.boss.EXPECT().
		RenameChannel(slackboss.ByChannel(channel, show), "07-20-hot-dog-festival", true).
		Return("C1", nil)
	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), briefingTS, gomock.Any(), "New show on 07/20").
		Return(briefingTS, false, nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestSyncShowPointPersonSwap(t *testing.T) {
	f := newSyncFixture(t)
	prior := publishedShow()
	prior.PointID = 1
	show := publishedShow()
	show.PointID = 2

	briefingTS := fmt.Sprintf("%d.000100", f.now.Unix()-5)
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: briefingTS}
	oldPoint := &entity.SlackUser{ID: "U1", MemberID: 1}
	newMember := &entity.Member{ID: 2, UserID: 20}
	newPoint := &entity.SlackUser{ID: "U2", MemberID: 2}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil).Times(2)

	// Briefing names the new point person.
	f.memRepo.EXPECT().GetByID(int64(2)).Return(newMember, nil).Times(2)
	f.members.EXPECT().EnsureSlackUser(gomock.Any(), newMember).Return(newPoint, nil).Times(2)
	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), briefingTS, gomock.Any(), "New show on 07/20").
		Return(briefingTS, false, nil)

	// The previous point person does not perform, so they leave the channel.
	f.roleRepo.EXPECT().GetByShowAndPerformer(int64(1), int64(1)).Return(nil, nil)
	f.slackers.EXPECT().GetByMemberID(int64(1)).Return(oldPoint, nil)
	f.boss.EXPECT().
		RemoveUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(oldPoint)).
		Return(nil)
	f.boss.EXPECT().
		InviteUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(newPoint)).
		Return(nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestSyncShowPriorPointPersonStaysWhenPerforming(t *testing.T) {
	f := newSyncFixture(t)
	prior := publishedShow()
	prior.PointID = 1
	show := publishedShow()
	show.PointID = 0

	briefingTS := fmt.Sprintf("%d.000100", f.now.Unix()-5)
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: briefingTS}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)
	f.boss.EXPECT().
		SendMessage(slackboss.ByChannel(channel, show), briefingTS, gomock.Any(), "New show on 07/20").
		Return(briefingTS, false, nil)

	// Performing members keep their seat even when handing off point duty.
	f.roleRepo.EXPECT().
		GetByShowAndPerformer(int64(1), int64(1)).
		Return(&entity.Role{ID: 9, ShowID: 1, PerformerID: 1}, nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestSyncShowUnchangedIsNoOp(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()
	prior := publishedShow()
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1, BriefingTS: "1658200000.000100"}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)

	require.NoError(t, f.sync.SyncShow(context.Background(), show, prior))
}

func TestInvitePerformer(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1}
	member := &entity.Member{ID: 5, UserID: 50}
	slackUser := &entity.SlackUser{ID: "U5", MemberID: 5}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)
	f.members.EXPECT().EnsureSlackUser(gomock.Any(), member).Return(slackUser, nil)
	f.boss.EXPECT().
		InviteUsers(slackboss.ByChannel(channel, show), slackboss.BySlackUsers(slackUser)).
		Return(nil)

	require.NoError(t, f.sync.InvitePerformer(context.Background(), show, member))
}

func TestInvitePerformerWithoutChannel(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()

	f.channels.EXPECT().GetByShowID(int64(1)).Return(nil, nil)

	require.NoError(t, f.sync.InvitePerformer(context.Background(), show, &entity.Member{ID: 5}))
}

func TestRemovePerformerWithoutIdentityIsNoOp(t *testing.T) {
	f := newSyncFixture(t)
	show := publishedShow()
	channel := &entity.SlackChannel{ID: "C1", ShowID: 1}

	f.channels.EXPECT().GetByShowID(int64(1)).Return(channel, nil)
	f.slackers.EXPECT().GetByMemberID(int64(5)).Return(nil, nil)

	require.NoError(t, f.sync.RemovePerformer(context.Background(), show, 5))
}

func TestDiffShows(t *testing.T) {
	prior := publishedShow()
	show := publishedShow()
	assert.Empty(t, diffShows(prior, show))
	assert.Nil(t, diffShows(nil, show))

	show.Name = "Hot Dog Festival"
	show.Address = "123 Main St"
	show.PointID = 2
	assert.Equal(t,
		[]string{domain.FieldName, domain.FieldAddress, domain.FieldPoint},
		diffShows(prior, show))

	newDate := time.Date(2022, time.July, 21, 0, 0, 0, 0, time.UTC)
	dateOnly := publishedShow()
	dateOnly.Date = &newDate
	assert.Equal(t, []string{domain.FieldDate}, diffShows(prior, dateOnly))
}
