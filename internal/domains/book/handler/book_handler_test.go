package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/fault"
)

// stubService lets each test script the service outcome directly.
type stubService struct {
	createID   uuid.UUID
	createErr  error
	updateVer  int
	updateErr  error
	deleteOK   bool
	findOne    *model.Book
	findMany   []model.Book
	gotVersion string
}

func (s *stubService) Create(ctx context.Context, book *model.Book) (uuid.UUID, error) {
	return s.createID, s.createErr
}

func (s *stubService) Update(ctx context.Context, id string, book *model.Book, version string) (int, error) {
	s.gotVersion = version
	return s.updateVer, s.updateErr
}

func (s *stubService) Delete(ctx context.Context, id string) (bool, error) {
	return s.deleteOK, nil
}

func (s *stubService) FindByID(ctx context.Context, id string) (*model.Book, error) {
	return s.findOne, nil
}

func (s *stubService) Find(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	return s.findMany, nil
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	router.POST("/api/v1/books", h.Create)
	router.GET("/api/v1/books", h.List)
	router.GET("/api/v1/books/:id", h.GetByID)
	router.PUT("/api/v1/books/:id", h.Update)
	router.DELETE("/api/v1/books/:id", h.Delete)
	return router
}

const bookPayload = `{"title":"Alpha","publisher":"FOO_PRESS","price":"11.10","isbn":"9780201633610"}`

func TestCreateReturns201WithLocation(t *testing.T) {
	id := uuid.New()
	router := newTestRouter(&stubService{createID: id})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(bookPayload))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/books/"+id.String(), w.Header().Get("Location"))
}

func TestCreateMapsFaultsToStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"constraint violations", &fault.ConstraintViolations{Messages: []string{"the ISBN is not valid"}}, 422},
		{"natural key exists", &fault.NaturalKeyExists{Field: "title", Value: "Alpha"}, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{createErr: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(bookPayload))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestCreateMalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader("{not json"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetByIDSetsETag(t *testing.T) {
	book := &model.Book{ID: uuid.New(), Version: 2, Title: "Alpha"}
	router := newTestRouter(&stubService{findOne: book})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+book.ID.String(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"2"`, w.Header().Get("ETag"))
}

func TestGetByIDNotModified(t *testing.T) {
	book := &model.Book{ID: uuid.New(), Version: 2, Title: "Alpha"}
	router := newTestRouter(&stubService{findOne: book})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+book.ID.String(), nil)
	req.Header.Set("If-None-Match", `"2"`)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetByIDUnknown(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEmptyIs404(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books?title=nothing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListReturnsMatches(t *testing.T) {
	books := []model.Book{{ID: uuid.New(), Title: "Alpha"}}
	router := newTestRouter(&stubService{findMany: books})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/books?title=alp", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Meta    struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Meta.Total)
}

func TestUpdateReturns204WithNewETag(t *testing.T) {
	svc := &stubService{updateVer: 1}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/books/"+uuid.NewString(), strings.NewReader(bookPayload))
	req.Header.Set("If-Match", `"0"`)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, `"1"`, w.Header().Get("ETag"))
	assert.Equal(t, `"0"`, svc.gotVersion)
}

func TestUpdateMapsFaultsToStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing token", &fault.VersionInvalid{Raw: ""}, 428},
		{"stale token", &fault.VersionOutdated{Version: 0}, 412},
		{"unknown entity", &fault.EntityNotExists{ID: "x"}, 404},
		{"constraint violations", &fault.ConstraintViolations{Messages: []string{"boom"}}, 422},
		{"natural key exists", &fault.NaturalKeyExists{Field: "isbn"}, 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&stubService{updateErr: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/api/v1/books/"+uuid.NewString(), strings.NewReader(bookPayload))
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestDeleteReturns204(t *testing.T) {
	router := newTestRouter(&stubService{deleteOK: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/books/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)

	// A repeat delete is still a 204.
	router = newTestRouter(&stubService{deleteOK: false})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/books/"+uuid.NewString(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
