package kernel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"github.com/shashiranjanraj/orderdesk/pkg/testkit"
)

func newKernel(t *testing.T, opts ...Option) *HTTPKernel {
	t.Helper()
	db := testkit.NewDB(t, models.All()...)
	k, err := NewHTTPKernel(db, append([]Option{WithRateLimit(0)}, opts...)...)
	require.NoError(t, err)
	return k
}

func TestAPIScenarios(t *testing.T) {
	testkit.RunDir(t, newKernel(t).Handler(), "testdata/api")
}

func TestAPIScenariosWithCache(t *testing.T) {
	c := cache.NewMemory()
	t.Cleanup(func() { _ = c.Close() })

	testkit.RunDir(t, newKernel(t, WithCache(c, time.Minute)).Handler(), "testdata/api")
}

// Rejected writes leave stored rows intact, and updates embed the same
// relations as creates.
func TestValidationScenarios(t *testing.T) {
	testkit.RunDir(t, newKernel(t).Handler(), "testdata/validation")
}

func TestRoutesListsEveryResource(t *testing.T) {
	infos := newKernel(t).Routes()

	names := map[string]bool{}
	for _, ri := range infos {
		names[ri.Name] = true
	}
	for _, res := range []string{"categories", "products", "customers", "orders", "order-items"} {
		for _, action := range []string{"index", "store", "show", "update", "destroy"} {
			assert.True(t, names[res+"."+action], "%s.%s", res, action)
		}
	}
	assert.True(t, names["health"])
	assert.True(t, names["metrics"])
	assert.True(t, names["graphql"])
}

func TestMetricsEndpoint(t *testing.T) {
	h := newKernel(t).Handler()

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/categories", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderdesk_http_requests_total")
	assert.Contains(t, rec.Body.String(), "orderdesk_db_query_duration_seconds")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newKernel(t).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/categories/1", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":405`)
}

func TestRequestIDEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	newKernel(t).Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRateLimitApplies(t *testing.T) {
	db := testkit.NewDB(t, models.All()...)
	k, err := NewHTTPKernel(db, WithRateLimit(2))
	require.NoError(t, err)
	h := k.Handler()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestCachedListsSeeWrites(t *testing.T) {
	c := cache.NewMemory()
	t.Cleanup(func() { _ = c.Close() })
	h := newKernel(t, WithCache(c, time.Minute)).Handler()

	list := func() []models.Category {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var out []models.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		return out
	}

	assert.Empty(t, list())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"Desserts"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	got := list()
	require.Len(t, got, 1)
	assert.Equal(t, "Desserts", got[0].Name)

	gen, err := c.Generation(context.Background())
	require.NoError(t, err)
	assert.Positive(t, gen)
}
