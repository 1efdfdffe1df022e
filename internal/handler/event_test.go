package handler_test

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
	"github.com/stretchr/testify/require"

	"github.com/mrios/tripbook/internal/domain"
	"github.com/mrios/tripbook/internal/handler"
)

// mockEvents is a test double for handler.EventServicer.
type mockEvents struct {
	create  func(ctx context.Context, event domain.TripEvent) (domain.TripEvent, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.TripEvent, error)
}

func (m *mockEvents) Create(ctx context.Context, e domain.TripEvent) (domain.TripEvent, error) {
	return m.create(ctx, e)
}
func (m *mockEvents) GetByID(ctx context.Context, id uuid.UUID) (domain.TripEvent, error) {
	return m.getByID(ctx, id)
}

var _ handler.EventServicer = (*mockEvents)(nil)

func eventRouter(m handler.EventServicer) http.Handler {
	return handler.NewServer(nil, nil, m, nil, nil).Routes()
}

// ---- POST /events ----------------------------------------------------------

func TestCreateEvent_201(t *testing.T) {
	var got domain.TripEvent
	m := &mockEvents{create: func(_ context.Context, e domain.TripEvent) (domain.TripEvent, error) {
		got = e
		e.ID = uuid.New()
		e.CreatedAt = time.Now().UTC()
		return e, nil
	}}

	body := jsonBody(t, map[string]any{
		"name":        "Camino de Santiago",
		"occurred_at": "2025-05-20T08:00:00Z",
		"place":       "Santiago de Compostela",
		"lat":         42.8806,
		"lon":         -8.5449,
		"image_ref":   "https://img.example.com/camino.jpg",
	})
	req := asIdentity(httptest.NewRequest(http.MethodPost, "/events", body), "a@x.com")
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Camino de Santiago", got.Name)
	// The owner comes from the session, never from the body.
	assert.Equal(t, "a@x.com", got.Owner)

	var resp domain.TripEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateEvent_401_Anonymous(t *testing.T) {
	m := &mockEvents{create: func(context.Context, domain.TripEvent) (domain.TripEvent, error) {
		t.Fatal("service must not be called for an anonymous request")
		return domain.TripEvent{}, nil
	}}

	body := jsonBody(t, map[string]any{"name": "x", "place": "y", "occurred_at": "2025-05-20T08:00:00Z"})
	req := httptest.NewRequest(http.MethodPost, "/events", body)
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateEvent_422_Validation(t *testing.T) {
	m := &mockEvents{create: func(context.Context, domain.TripEvent) (domain.TripEvent, error) {
		return domain.TripEvent{}, domain.ErrValidation
	}}

	body := jsonBody(t, map[string]any{"place": "Granada", "occurred_at": "2025-05-20T08:00:00Z"})
	req := asIdentity(httptest.NewRequest(http.MethodPost, "/events", body), "a@x.com")
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}

func TestCreateEvent_400_MalformedBody(t *testing.T) {
	m := &mockEvents{}

	req := asIdentity(httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString("nope")), "a@x.com")
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ---- GET /events/{id} ------------------------------------------------------

func TestGetEvent_200(t *testing.T) {
	fixture := domain.TripEvent{
		ID:         uuid.New(),
		Name:       "Alhambra",
		OccurredAt: time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC),
		Place:      "Granada",
		Owner:      "a@x.com",
	}
	m := &mockEvents{getByID: func(_ context.Context, id uuid.UUID) (domain.TripEvent, error) {
		assert.Equal(t, fixture.ID, id)
		return fixture, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/events/"+fixture.ID.String(), nil)
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.TripEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, fixture.ID, resp.ID)
	assert.Equal(t, fixture.Name, resp.Name)
}

func TestGetEvent_404_NotFound(t *testing.T) {
	m := &mockEvents{getByID: func(context.Context, uuid.UUID) (domain.TripEvent, error) {
		return domain.TripEvent{}, domain.ErrNotFound
	}}

	req := httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestGetEvent_400_BadID(t *testing.T) {
	m := &mockEvents{getByID: func(context.Context, uuid.UUID) (domain.TripEvent, error) {
		t.Fatal("service must not be called for an unparseable id")
		return domain.TripEvent{}, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/events/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	eventRouter(m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
