package course

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"codewithbuder/model"
	"codewithbuder/services"
	"codewithbuder/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal Store for handler tests: collection snapshots are
// pushed through push(), creates are recorded or failed on demand.
type memStore struct {
	mu         sync.Mutex
	onSnapshot func([]store.Document)
	onError    func(error)
	createErr  error
	created    int
}

func (m *memStore) SubscribeCollection(ctx context.Context, name string, onSnapshot func([]store.Document), onError func(error)) func() {
	m.mu.Lock()
	m.onSnapshot = onSnapshot
	m.onError = onError
	m.mu.Unlock()
	return func() {}
}

func (m *memStore) SubscribeDocument(ctx context.Context, collection, id string, onSnapshot func(*store.Document)) func() {
	return func() {}
}

func (m *memStore) GetDocument(ctx context.Context, collection, id string) (*store.Document, error) {
	return nil, nil
}

func (m *memStore) CreateDocument(ctx context.Context, collection string, record interface{}) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return "", m.createErr
	}
	m.created++
	return "course-1", nil
}

func (m *memStore) SetDocument(ctx context.Context, collection, id string, record interface{}) error {
	return nil
}

func (m *memStore) push(docs []store.Document) {
	m.mu.Lock()
	cb := m.onSnapshot
	m.mu.Unlock()
	if cb != nil {
		cb(docs)
	}
}

func (m *memStore) pushError(err error) {
	m.mu.Lock()
	cb := m.onError
	m.mu.Unlock()
	if cb != nil {
		cb(err)
	}
}

type anonResolver struct{}

func (anonResolver) Identity() *model.Identity { return nil }

func testRouter(st *memStore) (*gin.Engine, *services.Hub) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	hub := services.NewHub(st)
	hub.Courses.Subscribe(context.Background())
	gateway := services.NewWriteGateway(st, anonResolver{})
	CourseController(router, hub, gateway)
	return router, hub
}

func bearer(t *testing.T, secret string) string {
	t.Helper()
	claims := model.AccessClaims{
		SessionID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestListCourses(t *testing.T) {
	st := &memStore{}
	router, _ := testRouter(st)
	st.push([]store.Document{
		{ID: "c1", Fields: map[string]interface{}{"title": "Go Basics"}},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Courses []map[string]interface{} `json:"courses"`
		Stale   bool                     `json:"stale"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Courses, 1)
	assert.Equal(t, "c1", body.Courses[0]["id"])
	assert.False(t, body.Stale)
}

func TestListCoursesFlagsStaleData(t *testing.T) {
	st := &memStore{}
	router, _ := testRouter(st)
	st.push([]store.Document{
		{ID: "c1", Fields: map[string]interface{}{"title": "Go Basics"}},
	})
	st.pushError(errors.New("stream reset"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/courses", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"stale":true`)
	assert.Contains(t, w.Body.String(), "Go Basics")
}

func TestCreateCourseValidationErrors(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	router, _ := testRouter(&memStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/course", strings.NewReader(`{"title":""}`))
	req.Header.Set("Authorization", bearer(t, "test-secret"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Course Title is required", body.Errors["title"])
	assert.Equal(t, "Category is required", body.Errors["category"])
	assert.Equal(t, "Course Description is required", body.Errors["description"])
}

func TestCreateCourse(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	st := &memStore{}
	router, _ := testRouter(st)

	payload := `{"title":"Go Basics","category":"backend","description":"An introduction to Go."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/course", strings.NewReader(payload))
	req.Header.Set("Authorization", bearer(t, "test-secret"))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"courseId":"course-1"`)
	assert.Equal(t, 1, st.created)
}

func TestCreateCourseRequiresToken(t *testing.T) {
	router, _ := testRouter(&memStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/course", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCourseStoreFailure(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	st := &memStore{createErr: errors.New("permission denied")}
	router, hub := testRouter(st)
	st.push([]store.Document{
		{ID: "c1", Fields: map[string]interface{}{"title": "Go Basics"}},
	})

	payload := `{"title":"Broken","category":"backend","description":"Will not land."}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/course", strings.NewReader(payload))
	req.Header.Set("Authorization", bearer(t, "test-secret"))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The failed write never shows up in the synchronized view.
	assert.Equal(t, 1, hub.Courses.Len())
}
