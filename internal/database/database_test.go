package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liondance/show-manager/internal/domain"
	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

func setupDM(t *testing.T) contract.DataManager {
	db := SetupTestDB(t)
	t.Cleanup(func() { CleanupTestDB(t, db) })
	return NewInstance(db)
}

func createMember(t *testing.T, dm contract.DataManager, email string) *entity.Member {
	t.Helper()

	user := &entity.User{FirstName: "Test", LastName: "Member", Email: email}
	require.NoError(t, dm.User().Create(user))

	member := &entity.Member{UserID: user.ID, School: -1, ClassYear: -1}
	require.NoError(t, dm.Member().Create(member))
	return member
}

func TestShowCRUD(t *testing.T) {
	dm := setupDM(t)

	date := time.Date(2022, time.July, 20, 0, 0, 0, 0, time.UTC)
	show := &entity.Show{
		Name:     "National Hot Dog Day",
		Date:     &date,
		Time:     "14:30",
		Address:  "1 Main St",
		Lions:    2,
		Status:   domain.StatusPublished,
		Priority: domain.PriorityNormal,
	}
	require.NoError(t, dm.Show().Create(show))
	require.NotZero(t, show.ID)

	got, err := dm.Show().GetByID(show.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "National Hot Dog Day", got.Name)
	require.NotNil(t, got.Date)
	assert.Equal(t, "07/20", got.FormattedDate())
	assert.Equal(t, "14:30", got.Time)
	assert.Equal(t, int64(0), got.PointID)
	assert.Equal(t, int64(0), got.ContactID)

	got.Address = "2 Elm St"
	got.Status = domain.StatusClosed
	require.NoError(t, dm.Show().Update(got))

	updated, err := dm.Show().GetByID(show.ID)
	require.NoError(t, err)
	assert.Equal(t, "2 Elm St", updated.Address)
	assert.Equal(t, domain.StatusClosed, updated.Status)

	require.NoError(t, dm.Show().Delete(show.ID))
	gone, err := dm.Show().GetByID(show.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestShowNullableFieldsRoundTrip(t *testing.T) {
	dm := setupDM(t)

	show := &entity.Show{Name: "Draft Show"}
	require.NoError(t, dm.Show().Create(show))

	got, err := dm.Show().GetByID(show.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Date)
	assert.Equal(t, "", got.Time)
	assert.Equal(t, int64(0), got.PointID)
	assert.Equal(t, int64(0), got.ContactID)
}

func TestShowGetByIDNotFound(t *testing.T) {
	dm := setupDM(t)

	got, err := dm.Show().GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRoundMinTimeAndUniqueness(t *testing.T) {
	dm := setupDM(t)

	show := &entity.Show{Name: "Grand Opening"}
	require.NoError(t, dm.Show().Create(show))

	min, err := dm.Round().MinTime(show.ID)
	require.NoError(t, err)
	assert.Equal(t, "", min)

	require.NoError(t, dm.Round().Create(&entity.Round{ShowID: show.ID, Time: "14:30"}))
	require.NoError(t, dm.Round().Create(&entity.Round{ShowID: show.ID, Time: "09:00"}))

	min, err = dm.Round().MinTime(show.ID)
	require.NoError(t, err)
	assert.Equal(t, "09:00", min)

	// One slot per time and show.
	err = dm.Round().Create(&entity.Round{ShowID: show.ID, Time: "09:00"})
	require.Error(t, err)
	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)
}

func TestRoleUniquePerShowAndPerformer(t *testing.T) {
	dm := setupDM(t)

	show := &entity.Show{Name: "Grand Opening"}
	require.NoError(t, dm.Show().Create(show))
	member := createMember(t, dm, "perf@example.com")

	role := &entity.Role{ShowID: show.ID, PerformerID: member.ID, RoleType: domain.RoleLion}
	require.NoError(t, dm.Role().Create(role))

	dup := &entity.Role{ShowID: show.ID, PerformerID: member.ID, RoleType: domain.RoleDrum}
	err := dm.Role().Create(dup)
	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)

	got, err := dm.Role().GetByShowAndPerformer(show.ID, member.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.RoleLion, got.RoleType)
}

func TestGetPerformersByShow(t *testing.T) {
	dm := setupDM(t)

	show := &entity.Show{Name: "Grand Opening"}
	require.NoError(t, dm.Show().Create(show))

	first := createMember(t, dm, "first@example.com")
	second := createMember(t, dm, "second@example.com")
	createMember(t, dm, "bystander@example.com")

	require.NoError(t, dm.Role().Create(&entity.Role{ShowID: show.ID, PerformerID: first.ID, RoleType: -1}))
	require.NoError(t, dm.Role().Create(&entity.Role{ShowID: show.ID, PerformerID: second.ID, RoleType: domain.RoleDrum}))

	performers, err := dm.Member().GetPerformersByShow(show.ID)
	require.NoError(t, err)
	require.Len(t, performers, 2)
	assert.Equal(t, first.ID, performers[0].ID)
	assert.Equal(t, second.ID, performers[1].ID)
}

func TestSlackChannelPerShowUniqueness(t *testing.T) {
	dm := setupDM(t)

	show := &entity.Show{Name: "Grand Opening"}
	require.NoError(t, dm.Show().Create(show))

	channel := &entity.SlackChannel{ID: "C1", ShowID: show.ID}
	require.NoError(t, dm.SlackChannel().Create(channel))

	// show_id is unique: a second channel for the same show is rejected.
	err := dm.SlackChannel().Create(&entity.SlackChannel{ID: "C2", ShowID: show.ID})
	var sqliteErr sqlite3.Error
	require.ErrorAs(t, err, &sqliteErr)
	assert.Equal(t, sqlite3.ErrConstraint, sqliteErr.Code)

	got, err := dm.SlackChannel().GetByShowID(show.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "C1", got.ID)
	assert.Equal(t, "", got.BriefingTS)

	got.BriefingTS = "1658300000.000100"
	require.NoError(t, dm.SlackChannel().Update(got))

	updated, err := dm.SlackChannel().GetByShowID(show.ID)
	require.NoError(t, err)
	assert.Equal(t, "1658300000.000100", updated.BriefingTS)

	require.NoError(t, dm.SlackChannel().Delete("C1"))
	gone, err := dm.SlackChannel().GetByShowID(show.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSlackChannelCascadesWithShow(t *testing.T) {
	dm := setupDM(t)

	show := &entity.Show{Name: "Grand Opening"}
	require.NoError(t, dm.Show().Create(show))
	require.NoError(t, dm.SlackChannel().Create(&entity.SlackChannel{ID: "C1", ShowID: show.ID}))

	require.NoError(t, dm.Show().Delete(show.ID))

	gone, err := dm.SlackChannel().GetByShowID(show.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestSlackUserCascadesWithUser(t *testing.T) {
	dm := setupDM(t)

	member := createMember(t, dm, "ada@example.com")
	require.NoError(t, dm.SlackUser().Create(&entity.SlackUser{ID: "U1", MemberID: member.ID}))

	got, err := dm.SlackUser().GetByMemberID(member.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "U1", got.ID)

	// Deleting the user removes the member and its Slack identity.
	require.NoError(t, dm.User().Delete(member.UserID))

	memberGone, err := dm.Member().GetByID(member.ID)
	require.NoError(t, err)
	assert.Nil(t, memberGone)

	identityGone, err := dm.SlackUser().GetByMemberID(member.ID)
	require.NoError(t, err)
	assert.Nil(t, identityGone)
}

func TestMemberUnsetFieldsRoundTrip(t *testing.T) {
	dm := setupDM(t)

	member := createMember(t, dm, "ada@example.com")

	got, err := dm.Member().GetByID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, got.School)
	assert.Equal(t, -1, got.ClassYear)
	assert.Equal(t, domain.PositionGeneralMember, got.Position)
}

func TestContactRoundTrip(t *testing.T) {
	dm := setupDM(t)

	contact := &entity.Contact{FirstName: "Grace", LastName: "Hopper", Phone: "555-0100", Email: "grace@example.com"}
	require.NoError(t, dm.Contact().Create(contact))
	require.NotZero(t, contact.ID)

	got, err := dm.Contact().GetByID(contact.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Grace Hopper", got.FullName())
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	dm := setupDM(t)

	sentinel := errors.New("boom")
	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Show().Create(&entity.Show{Name: "Doomed Show"}); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	shows, err := dm.Show().GetAll()
	require.NoError(t, err)
	assert.Empty(t, shows)
}

func TestWithTransactionCommits(t *testing.T) {
	dm := setupDM(t)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		user := &entity.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
		if err := tx.User().Create(user); err != nil {
			return err
		}
		return tx.Member().Create(&entity.Member{UserID: user.ID, School: -1, ClassYear: -1})
	})
	require.NoError(t, err)

	member, err := dm.Member().GetByUserID(1)
	require.NoError(t, err)
	assert.NotNil(t, member)
}
