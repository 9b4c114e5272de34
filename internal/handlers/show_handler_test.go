package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/liondance/show-manager/internal/domain"
	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
	"github.com/liondance/show-manager/internal/domain/service"
	"github.com/liondance/show-manager/internal/handlers"
	"github.com/liondance/show-manager/mocks"
)

type handlerFixture struct {
	mux      *http.ServeMux
	shows    *mocks.MockShowService
	members  *mocks.MockMemberService
	contacts *mocks.MockContactService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		mux:      http.NewServeMux(),
		shows:    mocks.NewMockShowService(ctrl),
		members:  mocks.NewMockMemberService(ctrl),
		contacts: mocks.NewMockContactService(ctrl),
	}
	handlers.New(f.shows, f.members, f.contacts).Register(f.mux)
	return f
}

func (f *handlerFixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestCreateShow(t *testing.T) {
	f := newHandlerFixture(t)

	date := time.Date(2022, time.July, 20, 0, 0, 0, 0, time.UTC)
	created := &entity.Show{ID: 1, Name: "National Hot Dog Day", Date: &date, Status: domain.StatusPublished}

	f.shows.EXPECT().
		CreateShow(gomock.Any(), contract.ShowInput{
			Name: "National Hot Dog Day", Date: "2022-07-20", Status: domain.StatusPublished,
		}).
		Return(created, nil)

	rec := f.do(t, http.MethodPost, "/shows", map[string]any{
		"name":   "National Hot Dog Day",
		"date":   "2022-07-20",
		"status": domain.StatusPublished,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID            int64  `json:"id"`
		DayOfWeek     string `json:"day_of_week"`
		FormattedDate string `json:"formatted_date"`
		IsOpen        bool   `json:"is_open"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "WED", resp.DayOfWeek)
	assert.Equal(t, "07/20", resp.FormattedDate)
	assert.True(t, resp.IsOpen)
}

func TestCreateShowValidation(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/shows", map[string]any{"date": "2022-07-20"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "name is required")

	rec = f.do(t, http.MethodPost, "/shows", map[string]any{"name": "X", "date": "07/20/2022"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "date has an invalid format")
}

func TestCreateShowBadJSON(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/shows", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetShowNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().GetShow(gomock.Any(), int64(9)).Return(nil, service.ErrShowNotFound)

	rec := f.do(t, http.MethodGet, "/shows/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetShowAggregates(t *testing.T) {
	f := newHandlerFixture(t)

	show := &entity.Show{ID: 1, Name: "Grand Opening", Status: domain.StatusPublished}
	f.shows.EXPECT().GetShow(gomock.Any(), int64(1)).Return(&contract.ShowDetails{
		Show:            show,
		PerformerCount:  3,
		HasSlackChannel: true,
	}, nil)

	rec := f.do(t, http.MethodGet, "/shows/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		PerformerCount  int  `json:"performer_count"`
		HasSlackChannel bool `json:"has_slack_channel"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.PerformerCount)
	assert.True(t, resp.HasSlackChannel)
}

func TestPublishShowWithoutDate(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().PublishShow(gomock.Any(), int64(1)).Return(nil, service.ErrDateRequired)

	rec := f.do(t, http.MethodPost, "/shows/1/publish", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPublishShow(t *testing.T) {
	f := newHandlerFixture(t)

	date := time.Date(2022, time.July, 20, 0, 0, 0, 0, time.UTC)
	show := &entity.Show{ID: 1, Name: "Grand Opening", Date: &date, Status: domain.StatusPublished}
	f.shows.EXPECT().PublishShow(gomock.Any(), int64(1)).Return(show, nil)

	rec := f.do(t, http.MethodPost, "/shows/1/publish", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteShow(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().DeleteShow(gomock.Any(), int64(1)).Return(nil)

	rec := f.do(t, http.MethodDelete, "/shows/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInvalidPathID(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/shows/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddRound(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().AddRound(gomock.Any(), int64(1), "14:30").
		Return(&entity.Round{ID: 10, ShowID: 1, Time: "14:30"}, nil)

	rec := f.do(t, http.MethodPost, "/shows/1/rounds", map[string]any{"time": "14:30"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddRoundRejectsBadClock(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/shows/1/rounds", map[string]any{"time": "2pm"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAddRoleDefaultsRoleType(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().AddRole(gomock.Any(), int64(1), int64(5), -1).
		Return(&entity.Role{ID: 3, ShowID: 1, PerformerID: 5, RoleType: -1}, nil)

	rec := f.do(t, http.MethodPost, "/shows/1/roles", map[string]any{"performer_id": 5})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAddRoleWithExplicitType(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().AddRole(gomock.Any(), int64(1), int64(5), domain.RoleLion).
		Return(&entity.Role{ID: 3, ShowID: 1, PerformerID: 5, RoleType: domain.RoleLion}, nil)

	rec := f.do(t, http.MethodPost, "/shows/1/roles", map[string]any{
		"performer_id": 5,
		"role_type":    domain.RoleLion,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRemoveRole(t *testing.T) {
	f := newHandlerFixture(t)

	f.shows.EXPECT().RemoveRole(gomock.Any(), int64(1), int64(5)).Return(nil)

	rec := f.do(t, http.MethodDelete, "/shows/1/roles/5", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateUser(t *testing.T) {
	f := newHandlerFixture(t)

	f.members.EXPECT().
		CreateUser(gomock.Any(), &entity.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}).
		Return(&entity.Member{ID: 5, UserID: 10}, nil)

	rec := f.do(t, http.MethodPost, "/users", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateUserRejectsBadEmail(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodPost, "/users", map[string]any{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "email must be a valid email")
}

func TestCreateContact(t *testing.T) {
	f := newHandlerFixture(t)

	f.contacts.EXPECT().CreateContact(gomock.Any(), gomock.Any()).Return(nil)

	rec := f.do(t, http.MethodPost, "/contacts", map[string]any{
		"first_name": "Grace",
		"last_name":  "Hopper",
		"email":      "grace@example.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetContactNotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.contacts.EXPECT().GetContact(gomock.Any(), int64(9)).Return(nil, service.ErrContactNotFound)

	rec := f.do(t, http.MethodGet, "/contacts/9", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
