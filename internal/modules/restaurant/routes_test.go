package restaurant

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"restaurantapi/internal/domain"
	"restaurantapi/internal/middleware"
	"restaurantapi/internal/pkg/jwt"
	"restaurantapi/internal/pkg/upload"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ownerID = int64(1)
	otherID = int64(2)
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

// memoryStore backs every lookup the route table needs.
type memoryStore struct {
	mu          sync.Mutex
	restaurants map[int64]domain.Restaurant
	undelivered map[int64]int64
	nextID      int64
	updates     int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		restaurants: map[int64]domain.Restaurant{
			1: {ID: 1, Name: "Casa Pepe", UserID: ownerID, Status: domain.RestaurantOnline, RestaurantCategoryID: 1},
		},
		undelivered: map[int64]int64{},
		nextID:      2,
	}
}

func (s *memoryStore) List(ctx context.Context) ([]domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Restaurant
	for _, r := range s.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (s *memoryStore) GetByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &r, nil
}

func (s *memoryStore) GetOwnerID(ctx context.Context, id int64) (int64, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return r.UserID, nil
}

func (s *memoryStore) Create(ctx context.Context, r *domain.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.nextID
	s.nextID++
	s.restaurants[r.ID] = *r
	return nil
}

func (s *memoryStore) Update(ctx context.Context, r *domain.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates++
	s.restaurants[r.ID] = *r
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants[id]; !ok {
		return false, nil
	}
	delete(s.restaurants, id)
	return true, nil
}

func (s *memoryStore) CountUndelivered(ctx context.Context, restaurantID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undelivered[restaurantID], nil
}

func (s *memoryStore) RestaurantCategoryExists(ctx context.Context, id int64) (bool, error) {
	return id == 1, nil
}

type stubOrders struct{}

func (stubOrders) IndexRestaurant(c *gin.Context) { c.String(http.StatusOK, "orders") }
func (stubOrders) Analytics(c *gin.Context) { c.String(http.StatusOK, "analytics") }

type stubProducts struct{}

func (stubProducts) IndexRestaurant(c *gin.Context) { c.String(http.StatusOK, "products") }

type testEnv struct {
	router    *gin.Engine
	store     *memoryStore
	tokens    *jwt.Service
	uploadDir string
}

func newTestEnv(t *testing.T, enforce bool) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemoryStore()
	tokens := jwt.New("test-secret", time.Hour)
	dir := filepath.Join(t.TempDir(), "public", "restaurants")

	r := gin.New()
	RegisterRoutes(r, Routes{
		Restaurants: NewHandler(NewService(store, store)),
		Validation:  NewValidation(store),
		Orders:      stubOrders{},
		Products:    stubProducts{},
		Upload:      upload.New(upload.Config{Dir: dir}, zap.NewNop()),
		Auth:        middleware.JWTAuth(tokens),
		Ownership:   middleware.NewOwnershipChecker(store).CheckRestaurantOwnership(),
		EnforceAuth: enforce,
	})

	return &testEnv{router: r, store: store, tokens: tokens, uploadDir: dir}
}

func (e *testEnv) token(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := e.tokens.GenerateToken(userID, role)
	require.NoError(t, err)
	return tok
}

func (e *testEnv) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) storedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.uploadDir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func restaurantForm(t *testing.T, method, target string, values map[string]string, logo []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	if logo != nil {
		fw, err := w.CreateFormFile("logo", "logo.png")
		require.NoError(t, err)
		_, err = fw.Write(logo)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validForm() map[string]string {
	return map[string]string{
		"name":                   "Casa Pepe Renovada",
		"address":                "Calle Larios 5",
		"postal_code":            "29005",
		"shipping_costs":         "1.5",
		"restaurant_category_id": "1",
	}
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}

func TestUpdate_RequiresToken(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", validForm(), pngBytes), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_HEADER_MISSING", errorCode(t, w))
	assert.Zero(t, env.store.updates)
	assert.Empty(t, env.storedFiles(t))
}

func TestUpdate_RejectsCustomer(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", validForm(), pngBytes),
		env.token(t, ownerID, "customer"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))
	assert.Zero(t, env.store.updates)
}

func TestUpdate_RejectsOtherOwner(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", validForm(), pngBytes),
		env.token(t, otherID, "owner"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "NOT_OWNER", errorCode(t, w))
	assert.Zero(t, env.store.updates)
	assert.Empty(t, env.storedFiles(t), "no file is stored before ownership passes")
}

func TestUpdate_UnknownRestaurant(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/99", validForm(), nil),
		env.token(t, ownerID, "owner"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestUpdate_OwnerWithLogo(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", validForm(), pngBytes),
		env.token(t, ownerID, "owner"))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Restaurant domain.Restaurant `json:"restaurant"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	got := body.Data.Restaurant
	assert.Equal(t, "Casa Pepe Renovada", got.Name)
	assert.Equal(t, ownerID, got.UserID)
	assert.True(t, strings.HasPrefix(got.Logo, "/public/restaurants/"), got.Logo)

	files := env.storedFiles(t)
	require.Len(t, files, 1)
	assert.Equal(t, "/public/restaurants/"+files[0], got.Logo)
	assert.Regexp(t, `^[0-9a-z]+-[0-9]+\.png$`, files[0])
	assert.Equal(t, 1, env.store.updates)
}

func TestUpdate_ValidationFailureKeepsUploadedFile(t *testing.T) {
	env := newTestEnv(t, true)

	form := validForm()
	delete(form, "name")
	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", form, pngBytes),
		env.token(t, ownerID, "owner"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
	assert.Contains(t, w.Body.String(), `"name"`)
	assert.Zero(t, env.store.updates)
	assert.Len(t, env.storedFiles(t), 1)
}

func TestUpdate_RejectsOwnerInBody(t *testing.T) {
	env := newTestEnv(t, true)

	form := validForm()
	form["user_id"] = "2"
	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", form, nil),
		env.token(t, ownerID, "owner"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id"`)
}

func TestUpdate_RejectsUnknownCategory(t *testing.T) {
	env := newTestEnv(t, true)

	form := validForm()
	form["restaurant_category_id"] = "42"
	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", form, nil),
		env.token(t, ownerID, "owner"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"restaurant_category_id"`)
}

func TestUpdate_RejectsNonImageLogo(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPut, "/restaurants/1", validForm(), []byte("just some text")),
		env.token(t, ownerID, "owner"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"logo"`)
}

func TestUpdate_JSONBody(t *testing.T) {
	env := newTestEnv(t, true)

	body := `{"name":"Casa JSON","address":"Calle 1","postal_code":"29001","shipping_costs":0,"restaurant_category_id":1,"status":"closed"}`
	req := httptest.NewRequest(http.MethodPut, "/restaurants/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := env.do(req, env.token(t, ownerID, "owner"))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	stored, err := env.store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Casa JSON", stored.Name)
	assert.Equal(t, domain.RestaurantClosed, stored.Status)
}

func TestCreate_AsOwner(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(restaurantForm(t, http.MethodPost, "/restaurants", validForm(), pngBytes),
		env.token(t, ownerID, "owner"))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		Data struct {
			Restaurant domain.Restaurant `json:"restaurant"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ownerID, body.Data.Restaurant.UserID)
	assert.Equal(t, domain.RestaurantOffline, body.Data.Restaurant.Status)
	assert.NotEmpty(t, body.Data.Restaurant.Logo)

	w = env.do(httptest.NewRequest(http.MethodGet, "/restaurants/"+strconv.FormatInt(body.Data.Restaurant.ID, 10), nil), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Casa Pepe Renovada")
}

func TestDestroy(t *testing.T) {
	env := newTestEnv(t, true)

	w := env.do(httptest.NewRequest(http.MethodDelete, "/restaurants/1", nil), env.token(t, otherID, "owner"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.store.undelivered[1] = 1
	w = env.do(httptest.NewRequest(http.MethodDelete, "/restaurants/1", nil), env.token(t, ownerID, "owner"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RESTAURANT_HAS_ORDERS", errorCode(t, w))

	env.store.undelivered[1] = 0
	w = env.do(httptest.NewRequest(http.MethodDelete, "/restaurants/1", nil), env.token(t, ownerID, "owner"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully deleted")

	w = env.do(httptest.NewRequest(http.MethodGet, "/restaurants/1", nil), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicReads(t *testing.T) {
	env := newTestEnv(t, true)

	for path, want := range map[string]int{
		"/restaurants":            http.StatusOK,
		"/restaurants/1":          http.StatusOK,
		"/restaurants/1/products": http.StatusOK,
		"/restaurants/abc":        http.StatusBadRequest,
	} {
		w := env.do(httptest.NewRequest(http.MethodGet, path, nil), "")
		assert.Equal(t, want, w.Code, path)
	}
}

func TestGatedRoutes(t *testing.T) {
	tests := []struct {
		method  string
		path    string
		enforce bool
		want    int
	}{
		{http.MethodPost, "/restaurants", true, http.StatusUnauthorized},
		{http.MethodDelete, "/restaurants/1", true, http.StatusUnauthorized},
		{http.MethodGet, "/restaurants/1/orders", true, http.StatusUnauthorized},
		{http.MethodGet, "/restaurants/1/analytics", true, http.StatusUnauthorized},
		{http.MethodPut, "/restaurants/1", true, http.StatusUnauthorized},

		{http.MethodDelete, "/restaurants/1", false, http.StatusOK},
		{http.MethodGet, "/restaurants/1/orders", false, http.StatusOK},
		{http.MethodGet, "/restaurants/1/analytics", false, http.StatusOK},
		{http.MethodPut, "/restaurants/1", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		env := newTestEnv(t, tt.enforce)
		w := env.do(httptest.NewRequest(tt.method, tt.path, nil), "")
		assert.Equal(t, tt.want, w.Code, "%s %s enforce=%v", tt.method, tt.path, tt.enforce)
	}
}

func TestOpenRoutes(t *testing.T) {
	assert.Empty(t, OpenRoutes(true))
	assert.Len(t, OpenRoutes(false), 4)
	assert.Contains(t, OpenRoutes(false), "DELETE /restaurants/:restaurantId")
}
