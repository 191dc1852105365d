package controllers

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaardirectory/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBoothService implements domain.BoothService for handler tests.
type fakeBoothService struct {
	listResult   []*domain.Booth
	listErr      error
	createErr    error
	deleteErr    error
	searchResult []*domain.Booth
	searchErr    error

	lastListEventID  string
	lastCreateBooth  *domain.Booth
	lastCreatePhotos []*multipart.FileHeader
	lastDeleteID     string
	lastSearchQuery  string
}

func (f *fakeBoothService) ListBooths(ctx context.Context, eventID string) ([]*domain.Booth, error) {
	f.lastListEventID = eventID
	return f.listResult, f.listErr
}

func (f *fakeBoothService) CreateBooth(ctx context.Context, booth *domain.Booth, photos []*multipart.FileHeader) error {
	f.lastCreateBooth = booth
	f.lastCreatePhotos = photos
	if f.createErr != nil {
		return f.createErr
	}
	booth.ID = "bo-1"
	return nil
}

func (f *fakeBoothService) DeleteBooth(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

func (f *fakeBoothService) SearchBooths(ctx context.Context, query string) ([]*domain.Booth, error) {
	f.lastSearchQuery = query
	return f.searchResult, f.searchErr
}

func TestBoothController_List(t *testing.T) {
	t.Run("all booths", func(t *testing.T) {
		svc := &fakeBoothService{listResult: []*domain.Booth{{ID: "bo-1"}}}
		c := NewBoothController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.List(rec, httptest.NewRequest(http.MethodGet, "/booths", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.lastListEventID)
	})

	t.Run("filtered by eventId", func(t *testing.T) {
		svc := &fakeBoothService{listResult: []*domain.Booth{}}
		c := NewBoothController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.List(rec, httptest.NewRequest(http.MethodGet, "/booths?eventId=ev-1", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ev-1", svc.lastListEventID)
	})
}

func TestBoothController_Create(t *testing.T) {
	svc := &fakeBoothService{}
	c := NewBoothController(testLogger, svc)

	req := multipartRequest(t, http.MethodPost, "/booths", map[string]string{
		"eventId":     "ev-1",
		"name":        "silk stall",
		"description": "handmade fabrics",
		"contact":     "vendor@example.com",
		"socialMedia": "@silkstall",
		"boothNumber": "A1",
		"products":    "Silk Scarf, Wool Hat",
		"lat":         "52.52",
		"lng":         "13.405",
	}, map[string][]string{"photos": {"front.jpg", "inside.jpg"}})
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	b := svc.lastCreateBooth
	require.NotNil(t, b)
	assert.Equal(t, "ev-1", b.EventID)
	assert.Equal(t, "silk stall", b.Name)
	assert.Equal(t, "@silkstall", b.SocialMedia)
	assert.Equal(t, "A1", b.BoothNumber)
	assert.Equal(t, []string{"Silk Scarf", "Wool Hat"}, b.Products)
	require.NotNil(t, b.Location)
	assert.InDelta(t, 52.52, b.Location.Lat, 1e-9)
	assert.InDelta(t, 13.405, b.Location.Lng, 1e-9)
	require.Len(t, svc.lastCreatePhotos, 2)
	assert.Equal(t, "front.jpg", svc.lastCreatePhotos[0].Filename)
}

func TestBoothController_Create_MissingEventID(t *testing.T) {
	svc := &fakeBoothService{createErr: domain.ErrValidation}
	c := NewBoothController(testLogger, svc)

	req := multipartRequest(t, http.MethodPost, "/booths", map[string]string{"name": "silk stall"}, nil)
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", errorCode(t, rec.Body))
}

func TestBoothController_Create_BadCoordinates(t *testing.T) {
	svc := &fakeBoothService{}
	c := NewBoothController(testLogger, svc)

	req := multipartRequest(t, http.MethodPost, "/booths", map[string]string{
		"eventId": "ev-1",
		"lat":     "north",
		"lng":     "13.405",
	}, nil)
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastCreateBooth, "service is not reached on bad coordinates")
}

func TestBoothController_Create_NoLocationWhenCoordinatesAbsent(t *testing.T) {
	svc := &fakeBoothService{}
	c := NewBoothController(testLogger, svc)

	req := multipartRequest(t, http.MethodPost, "/booths", map[string]string{"eventId": "ev-1"}, nil)
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastCreateBooth)
	assert.Nil(t, svc.lastCreateBooth.Location)
}

func TestBoothController_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeBoothService{}
		c := NewBoothController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/booths/bo-1", nil)
		req.SetPathValue("id", "bo-1")
		rec := httptest.NewRecorder()
		c.Delete(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "bo-1", svc.lastDeleteID)
	})

	t.Run("absent id", func(t *testing.T) {
		svc := &fakeBoothService{deleteErr: domain.ErrNotFound}
		c := NewBoothController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/booths/missing", nil)
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		c.Delete(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", errorCode(t, rec.Body))
	})
}

func TestBoothController_Search(t *testing.T) {
	t.Run("with query", func(t *testing.T) {
		svc := &fakeBoothService{searchResult: []*domain.Booth{{ID: "bo-1"}}}
		c := NewBoothController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.Search(rec, httptest.NewRequest(http.MethodGet, "/booths/search?query=silk", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "silk", svc.lastSearchQuery)
	})

	t.Run("empty query short-circuits", func(t *testing.T) {
		svc := &fakeBoothService{}
		c := NewBoothController(testLogger, svc)

		rec := httptest.NewRecorder()
		c.Search(rec, httptest.NewRequest(http.MethodGet, "/booths/search", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, svc.lastSearchQuery, "service is not consulted")
		var booths []*domain.Booth
		decodeEnvelope(t, rec.Body, &booths)
		assert.Empty(t, booths)
	})
}
