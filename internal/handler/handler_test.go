package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"golang.org/x/crypto/bcrypt"

	"github.com/SokolovG/DevEvents/internal/domain"
	"github.com/SokolovG/DevEvents/internal/handler/dto"
	hmocks "github.com/SokolovG/DevEvents/internal/handler/mocks"
)

type handlerMocks struct {
	auth          *hmocks.MockAuthSvc
	events        *hmocks.MockEventSvc
	registrations *hmocks.MockRegistrationSvc
	comments      *hmocks.MockCommentSvc
	reference     *hmocks.MockReferenceSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		auth:          hmocks.NewMockAuthSvc(t),
		events:        hmocks.NewMockEventSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		comments:      hmocks.NewMockCommentSvc(t),
		reference:     hmocks.NewMockReferenceSvc(t),
	}

	h := NewHandler(m.auth, m.events, m.registrations, m.comments, m.reference, bcrypt.MinCost)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/status", h.TransitionEventStatus)
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/cancel", h.CancelRegistration)
		api.GET("/events/:id/registrations", h.ListEventRegistrations)
		api.GET("/users/:id/registrations", h.ListUserRegistrations)
		api.POST("/events/:id/comments", h.AddComment)
		api.GET("/events/:id/comments", h.ListComments)
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
		api.POST("/locations", h.CreateLocation)
		api.GET("/locations", h.ListLocations)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func testEvent() *domain.Event {
	start := time.Now().Add(48 * time.Hour).UTC()
	locationID := uuid.New().String()
	return &domain.Event{
		ID:              uuid.New().String(),
		Name:            "GopherCon",
		AuthorID:        uuid.New().String(),
		OrganizerID:     uuid.New().String(),
		CategoryID:      uuid.New().String(),
		LocationID:      &locationID,
		PubDate:         time.Now().UTC(),
		EventStartDate:  start,
		EventEndDate:    start.Add(4 * time.Hour),
		IsPublished:     true,
		MaxParticipants: 100,
		Format:          domain.EventFormatOffline,
		Status:          domain.EventStatusPlanned,
		CreatedAt:       time.Now().UTC(),
	}
}

// --- Auth ---

func TestHandler_RegisterUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Email:     "alice@example.com",
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	m.auth.EXPECT().Register(mock.Anything, mock.MatchedBy(func(input domain.RegisterUserInput) bool {
		// The handler must hash before calling the service.
		return input.Email == "alice@example.com" &&
			bcrypt.CompareHashAndPassword([]byte(input.PasswordHash), []byte("s3cret-pass")) == nil
	})).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_RegisterUser_ShortPassword(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterUser_DuplicateEmail(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrUserAlreadyExists)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", dto.RegisterUserRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Email: "alice@example.com", IsActive: true}
	m.auth.EXPECT().Authenticate(mock.Anything, "alice@example.com", "s3cret-pass").Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

// An unknown email and a wrong password must produce identical responses.
func TestHandler_Login_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	m1, r1 := setupRouter(t)
	m1.auth.EXPECT().Authenticate(mock.Anything, "nobody@example.com", "whatever").
		Return(nil, domain.ErrUserNotFound)
	unknownEmail := doJSON(t, r1, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	m2, r2 := setupRouter(t)
	m2.auth.EXPECT().Authenticate(mock.Anything, "alice@example.com", "wrong-pass").
		Return(nil, domain.ErrInvalidCredentials)
	wrongPassword := doJSON(t, r2, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	})

	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.JSONEq(t, unknownEmail.Body.String(), wrongPassword.Body.String())
}

func TestHandler_Login_InactiveUser(t *testing.T) {
	m, r := setupRouter(t)

	m.auth.EXPECT().Authenticate(mock.Anything, "alice@example.com", "s3cret-pass").
		Return(nil, domain.ErrUserInactive)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := testEvent()
	m.events.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:            "GopherCon",
		AuthorID:        event.AuthorID,
		OrganizerID:     event.OrganizerID,
		CategoryID:      event.CategoryID,
		LocationID:      event.LocationID,
		EventStartDate:  event.EventStartDate.Format(time.RFC3339),
		EventEndDate:    event.EventEndDate.Format(time.RFC3339),
		MaxParticipants: 100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GopherCon", resp.Name)
	assert.Equal(t, "planned", resp.Status)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:            "GopherCon",
		AuthorID:        uuid.New().String(),
		OrganizerID:     uuid.New().String(),
		CategoryID:      uuid.New().String(),
		EventStartDate:  "not-a-date",
		EventEndDate:    time.Now().Format(time.RFC3339),
		MaxParticipants: 100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &domain.InvalidEventError{Field: "meeting_link", Reason: "is required for online events"})

	start := time.Now().Add(48 * time.Hour)
	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:            "GopherCon",
		AuthorID:        uuid.New().String(),
		OrganizerID:     uuid.New().String(),
		CategoryID:      uuid.New().String(),
		EventStartDate:  start.Format(time.RFC3339),
		EventEndDate:    start.Add(time.Hour).Format(time.RFC3339),
		IsOnline:        true,
		MaxParticipants: 100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := testEvent()
	m.events.EXPECT().GetByID(mock.Anything, event.ID).Return(event, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+event.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Filters(t *testing.T) {
	m, r := setupRouter(t)

	var captured domain.EventFilter
	m.events.EXPECT().List(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
			captured = filter
			return []*domain.Event{testEvent()}, nil
		})

	from := time.Now().UTC().Truncate(time.Second)
	w := doJSON(t, r, http.MethodGet,
		"/api/events?online=true&category_id=cat-1&from="+from.Format(time.RFC3339), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured.Online)
	assert.True(t, *captured.Online)
	require.NotNil(t, captured.CategoryID)
	assert.Equal(t, "cat-1", *captured.CategoryID)
	require.NotNil(t, captured.From)
	assert.True(t, captured.From.Equal(from))
}

func TestHandler_ListEvents_BadFromDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events?from=yesterday", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := testEvent()
	m.events.EXPECT().Update(mock.Anything, event.ID, mock.Anything).Return(event, nil)

	name := "GopherCon EU"
	w := doJSON(t, r, http.MethodPatch, "/api/events/"+event.ID, dto.UpdateEventRequest{Name: &name})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TransitionStatus_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := testEvent()
	event.Status = domain.EventStatusOngoing
	m.events.EXPECT().TransitionStatus(mock.Anything, event.ID, domain.EventStatusOngoing).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+event.ID+"/status",
		dto.TransitionStatusRequest{Status: "ongoing"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TransitionStatus_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().TransitionStatus(mock.Anything, id, domain.EventStatusOngoing).
		Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/status",
		dto.TransitionStatusRequest{Status: "ongoing"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TransitionStatus_UnknownStatus(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/status",
		map[string]string{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	reg := &domain.Registration{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Status:    domain.RegistrationStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}
	m.registrations.EXPECT().Register(mock.Anything, eventID, userID).Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register",
		dto.RegisterForEventRequest{UserID: userID})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_RegisterForEvent_Full(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, eventID, userID).Return(nil, domain.ErrEventFull)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register",
		dto.RegisterForEventRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_AlreadyRegistered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, eventID, userID).Return(nil, domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register",
		dto.RegisterForEventRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterForEvent_DeadlinePassed(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Register(mock.Anything, eventID, userID).Return(nil, domain.ErrRegistrationClosed)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/register",
		dto.RegisterForEventRequest{UserID: userID})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelRegistration_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Cancel(mock.Anything, eventID, userID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/cancel",
		dto.CancelRegistrationRequest{UserID: userID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelRegistration_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	m.registrations.EXPECT().Cancel(mock.Anything, eventID, userID).Return(domain.ErrRegistrationNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/cancel",
		dto.CancelRegistrationRequest{UserID: userID})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEventRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	regs := []*domain.Registration{
		{ID: uuid.New().String(), EventID: eventID, UserID: uuid.New().String(), Status: domain.RegistrationStatusConfirmed},
	}
	m.registrations.EXPECT().ListByEvent(mock.Anything, eventID).Return(regs, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListUserRegistrations_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	m.registrations.EXPECT().ListByUser(mock.Anything, userID).Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+userID+"/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Comments ---

func TestHandler_AddComment_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	authorID := uuid.New().String()
	comment := &domain.Comment{
		ID:        uuid.New().String(),
		EventID:   eventID,
		AuthorID:  authorID,
		Text:      "great talk",
		CreatedAt: time.Now().UTC(),
	}
	m.comments.EXPECT().Add(mock.Anything, eventID, authorID, "great talk").Return(comment, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/comments",
		dto.AddCommentRequest{AuthorID: authorID, Text: "great talk"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_AddComment_EmptyText(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/comments",
		dto.AddCommentRequest{AuthorID: uuid.New().String(), Text: ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListComments_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	comments := []*domain.Comment{
		{ID: uuid.New().String(), EventID: eventID, AuthorID: uuid.New().String(), Text: "first"},
		{ID: uuid.New().String(), EventID: eventID, AuthorID: uuid.New().String(), Text: "second"},
	}
	m.comments.EXPECT().ListByEvent(mock.Anything, eventID).Return(comments, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/comments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CommentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Reference data ---

func TestHandler_CreateCategory_Success(t *testing.T) {
	m, r := setupRouter(t)

	category := &domain.Category{ID: uuid.New().String(), Name: "Conferences", Slug: "conferences"}
	m.reference.EXPECT().CreateCategory(mock.Anything, mock.Anything).Return(category, nil)

	w := doJSON(t, r, http.MethodPost, "/api/categories",
		dto.CreateCategoryRequest{Name: "Conferences", Slug: "conferences"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateCategory_SlugTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.reference.EXPECT().CreateCategory(mock.Anything, mock.Anything).Return(nil, domain.ErrCategorySlugTaken)

	w := doJSON(t, r, http.MethodPost, "/api/categories",
		dto.CreateCategoryRequest{Name: "Conferences", Slug: "conferences"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateLocation_Success(t *testing.T) {
	m, r := setupRouter(t)

	location := &domain.Location{ID: uuid.New().String(), Name: "Tech Hub", City: "Berlin", Country: "Germany"}
	m.reference.EXPECT().CreateLocation(mock.Anything, mock.Anything).Return(location, nil)

	w := doJSON(t, r, http.MethodPost, "/api/locations",
		dto.CreateLocationRequest{Name: "Tech Hub", City: "Berlin", Country: "Germany"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_StoreUnavailable(t *testing.T) {
	m, r := setupRouter(t)

	m.reference.EXPECT().ListCategories(mock.Anything).Return(nil, domain.ErrStoreUnavailable)

	w := doJSON(t, r, http.MethodGet, "/api/categories", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
