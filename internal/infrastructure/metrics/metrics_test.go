package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware_RecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/admin/contacts/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/admin/contacts/:id", "204"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/contacts/abc", nil))

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/admin/contacts/:id", "204"))
	assert.Equal(t, before+1, after)
}

func TestRecordStoreOperation(t *testing.T) {
	before := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("get", "contacts", "failure"))
	RecordStoreOperation("get", "contacts", time.Millisecond, errors.New("boom"))
	after := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("get", "contacts", "failure"))
	assert.Equal(t, before+1, after)
}

func TestRecordAuthAttempt(t *testing.T) {
	before := testutil.ToFloat64(authAttemptsTotal.WithLabelValues("success"))
	RecordAuthAttempt(true)
	assert.Equal(t, before+1, testutil.ToFloat64(authAttemptsTotal.WithLabelValues("success")))
}
