package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
	"github.com/liondance/show-manager/internal/domain/service"
	"github.com/liondance/show-manager/internal/slackboss"
)

// Handler is the JSON write-path over the application services. It does no
// Slack work itself; every mutation goes through the services so that
// persistence and channel sync run as one sequence.
type Handler struct {
	shows    contract.ShowService
	members  contract.MemberService
	contacts contract.ContactService
	validate *validator.Validate
	log      *logrus.Entry
}

func New(shows contract.ShowService, members contract.MemberService, contacts contract.ContactService) *Handler {
	return &Handler{
		shows:    shows,
		members:  members,
		contacts: contacts,
		validate: validator.New(),
		log:      logrus.WithField("component", "http"),
	}
}

// Register attaches all routes to the mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)

	mux.HandleFunc("POST /shows", h.handleCreateShow)
	mux.HandleFunc("GET /shows", h.handleListShows)
	mux.HandleFunc("GET /shows/{id}", h.handleGetShow)
	mux.HandleFunc("PUT /shows/{id}", h.handleUpdateShow)
	mux.HandleFunc("DELETE /shows/{id}", h.handleDeleteShow)
	mux.HandleFunc("POST /shows/{id}/publish", h.handlePublishShow)
	mux.HandleFunc("POST /shows/{id}/unpublish", h.handleUnpublishShow)
	mux.HandleFunc("POST /shows/{id}/close", h.handleCloseShow)

	mux.HandleFunc("POST /shows/{id}/rounds", h.handleAddRound)
	mux.HandleFunc("DELETE /rounds/{id}", h.handleRemoveRound)
	mux.HandleFunc("POST /shows/{id}/roles", h.handleAddRole)
	mux.HandleFunc("DELETE /shows/{id}/roles/{performerID}", h.handleRemoveRole)

	mux.HandleFunc("POST /users", h.handleCreateUser)
	mux.HandleFunc("DELETE /members/{id}", h.handleDeleteMember)

	mux.HandleFunc("POST /contacts", h.handleCreateContact)
	mux.HandleFunc("GET /contacts/{id}", h.handleGetContact)
}

type showRequest struct {
	Name      string `json:"name" validate:"required,max=60"`
	Date      string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Address   string `json:"address" validate:"max=80"`
	IsCampus  bool   `json:"is_campus"`
	Lions     int    `json:"lions" validate:"gte=0"`
	PointID   int64  `json:"point_id" validate:"gte=0"`
	ContactID int64  `json:"contact_id" validate:"gte=0"`
	Status    int    `json:"status" validate:"gte=0,lte=2"`
	Priority  int    `json:"priority" validate:"gte=0,lte=2"`
}

func (r showRequest) toInput() contract.ShowInput {
	return contract.ShowInput{
		Name:      r.Name,
		Date:      r.Date,
		Address:   r.Address,
		IsCampus:  r.IsCampus,
		Lions:     r.Lions,
		PointID:   r.PointID,
		ContactID: r.ContactID,
		Status:    r.Status,
		Priority:  r.Priority,
	}
}

type roundRequest struct {
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type roleRequest struct {
	PerformerID int64 `json:"performer_id" validate:"required,gt=0"`
	RoleType    *int  `json:"role_type" validate:"omitempty,gte=0,lte=5"`
}

type userRequest struct {
	FirstName string `json:"first_name" validate:"required,max=30"`
	LastName  string `json:"last_name" validate:"required,max=30"`
	Email     string `json:"email" validate:"required,email"`
}

type contactRequest struct {
	FirstName string `json:"first_name" validate:"max=30"`
	LastName  string `json:"last_name" validate:"max=30"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// showResponse augments a show with its derived fields.
type showResponse struct {
	*entity.Show
	DayOfWeek       string `json:"day_of_week"`
	FormattedDate   string `json:"formatted_date"`
	FormattedTime   string `json:"formatted_time"`
	IsOpen          bool   `json:"is_open"`
	PerformerCount  int    `json:"performer_count,omitempty"`
	HasSlackChannel bool   `json:"has_slack_channel"`
}

func newShowResponse(show *entity.Show) *showResponse {
	return &showResponse{
		Show:          show,
		DayOfWeek:     show.DayOfWeek(),
		FormattedDate: show.FormattedDate(),
		FormattedTime: show.FormattedTime(),
		IsOpen:        show.IsOpen(),
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) handleCreateShow(w http.ResponseWriter, r *http.Request) {
	var req showRequest
	if !h.decode(w, r, &req) {
		return
	}

	show, err := h.shows.CreateShow(r.Context(), req.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, newShowResponse(show))
}

func (h *Handler) handleListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.shows.ListShows(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	responses := make([]*showResponse, 0, len(shows))
	for _, show := range shows {
		responses = append(responses, newShowResponse(show))
	}
	h.respondJSON(w, http.StatusOK, responses)
}

func (h *Handler) handleGetShow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	details, err := h.shows.GetShow(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := newShowResponse(details.Show)
	resp.PerformerCount = details.PerformerCount
	resp.HasSlackChannel = details.HasSlackChannel
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleUpdateShow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req showRequest
	if !h.decode(w, r, &req) {
		return
	}

	show, err := h.shows.UpdateShow(r.Context(), id, req.toInput())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newShowResponse(show))
}

func (h *Handler) handleDeleteShow(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.shows.DeleteShow(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePublishShow(w http.ResponseWriter, r *http.Request) {
	h.handleStatusChange(w, r, h.shows.PublishShow)
}

func (h *Handler) handleUnpublishShow(w http.ResponseWriter, r *http.Request) {
	h.handleStatusChange(w, r, h.shows.UnpublishShow)
}

func (h *Handler) handleCloseShow(w http.ResponseWriter, r *http.Request) {
	h.handleStatusChange(w, r, h.shows.CloseShow)
}

func (h *Handler) handleStatusChange(
	w http.ResponseWriter, r *http.Request,
	change func(ctx context.Context, id int64) (*entity.Show, error),
) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	show, err := change(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, newShowResponse(show))
}

func (h *Handler) handleAddRound(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req roundRequest
	if !h.decode(w, r, &req) {
		return
	}

	round, err := h.shows.AddRound(r.Context(), id, req.Time)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, round)
}

func (h *Handler) handleRemoveRound(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.shows.RemoveRound(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAddRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req roleRequest
	if !h.decode(w, r, &req) {
		return
	}

	roleType := -1
	if req.RoleType != nil {
		roleType = *req.RoleType
	}

	role, err := h.shows.AddRole(r.Context(), id, req.PerformerID, roleType)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, role)
}

func (h *Handler) handleRemoveRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	performerID, ok := h.pathID(w, r, "performerID")
	if !ok {
		return
	}

	if err := h.shows.RemoveRole(r.Context(), id, performerID); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !h.decode(w, r, &req) {
		return
	}

	user := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	member, err := h.members.CreateUser(r.Context(), user)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]any{
		"user":   user,
		"member": member,
	})
}

func (h *Handler) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.members.DeleteMember(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !h.decode(w, r, &req) {
		return
	}

	contact := &entity.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	}
	if err := h.contacts.CreateContact(r.Context(), contact); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, contact)
}

func (h *Handler) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	contact, err := h.contacts.GetContact(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, contact)
}

// decode parses and validates a JSON request body.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: validationMessage(err)})
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.WithError(err).Error("Failed to encode response")
	}
}

// respondError maps service and Slack errors onto HTTP statuses.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var (
		apiErr    *slackboss.APIError
		usageErr  *slackboss.UsageError
		sqliteErr sqlite3.Error
	)

	switch {
	case errors.Is(err, service.ErrShowNotFound),
		errors.Is(err, service.ErrRoundNotFound),
		errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrMemberNotFound),
		errors.Is(err, service.ErrContactNotFound):
		h.respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDateRequired):
		h.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint:
		h.respondJSON(w, http.StatusConflict, errorResponse{Error: "record already exists"})
	case errors.As(err, &usageErr):
		h.log.WithError(err).Error("Invalid Slack reference usage")
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	case errors.As(err, &apiErr):
		h.log.WithError(err).Error("Slack API call failed")
		h.respondJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
	default:
		h.log.WithError(err).Error("Request failed")
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid request"
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "max":
			messages = append(messages, field+" must be at most "+fieldErr.Param()+" characters")
		case "email":
			messages = append(messages, field+" must be a valid email")
		case "datetime":
			messages = append(messages, field+" has an invalid format")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return strings.Join(messages, "; ")
}
