package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio_backend/internal/adapter/persistence/docstore"
	"portfolio_backend/internal/adapter/persistence/repository"
	"portfolio_backend/internal/infrastructure/auth"
	"portfolio_backend/internal/infrastructure/config"
	"portfolio_backend/internal/infrastructure/notification"
	"portfolio_backend/internal/infrastructure/printing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	t     *testing.T
	app   *App
	store *docstore.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			Env:                "test",
			BusinessName:       "Test Studio",
			AdminWhatsApp:      "+1 555 0199",
			CORSAllowedOrigins: []string{"https://portfolio.example"},
		},
		JWT: config.JWTConfig{Secret: "test-secret", Expiration: time.Hour},
	}
	store := docstore.NewMemoryStore()
	log := zap.NewNop()
	app := NewApp(cfg, log, Dependencies{
		Store:    store,
		Renderer: printing.NewPDFReceiptRenderer(cfg.App.BusinessName),
		Notifier: notification.NewEmailNotifier(config.EmailConfig{}, log),
	})
	return &testServer{t: t, app: app, store: store}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)
	return w
}

func (s *testServer) decode(w *httptest.ResponseRecorder, v any) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (s *testServer) provisionAndLogin() string {
	s.t.Helper()
	hash, err := auth.NewBcryptHasher(bcrypt.MinCost).Hash("secret123")
	require.NoError(s.t, err)
	_, err = repository.NewAdminCredentialRepository(s.store).Save(context.Background(), "admin", hash)
	require.NoError(s.t, err)

	w := s.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"secret123"}`, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	s.decode(w, &login)
	return login.Token
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Server is running"}`, w.Body.String())

	w = s.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{
		"/api/admin/dashboard",
		"/api/admin/receipt-requests",
		"/api/admin/contacts",
		"/api/admin/chat/sessions",
	} {
		w := s.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
	w := s.do(http.MethodGet, "/api/admin/dashboard", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginBeforeProvisioning(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodPost, "/api/admin/login", `{"username":"admin","password":"secret123"}`, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ADMIN_NOT_PROVISIONED")
}

func TestContactFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.provisionAndLogin()

	w := s.do(http.MethodPost, "/api/contact", `{"name":"Ana"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"missing_fields":["phone","message","inquiryType"]`)

	w = s.do(http.MethodPost, "/api/contact", `{"name":" Ana ","phone":"+1 555 0100","message":"Logo please","inquiryType":"New Order"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	s.decode(w, &created)
	require.NotEmpty(t, created.ID)

	w = s.do(http.MethodGet, "/api/admin/contacts/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	s.decode(w, &got)
	assert.Equal(t, "Ana", got["name"])
	assert.Equal(t, "new", got["status"])
	assert.Equal(t, "https://wa.me/+15550100", got["whatsappUrl"])

	w = s.do(http.MethodGet, "/api/admin/contacts?inquiryType=Collaboration", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(http.MethodPut, "/api/admin/contacts/"+created.ID, `{"status":"completed"}`, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPut, "/api/admin/contacts/"+created.ID, `{"status":"completed"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodDelete, "/api/admin/contacts/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodGet, "/api/admin/contacts/"+created.ID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactCreatedAtWithinRequest(t *testing.T) {
	s := newTestServer(t)
	repo := repository.NewContactInquiryRepository(s.store)

	for i := 0; i < 50; i++ {
		start := time.Now()
		w := s.do(http.MethodPost, "/api/contact", `{"name":"Ana","phone":"+1 555 0100","message":"hi","inquiryType":"New Order"}`, "")
		end := time.Now()
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created struct {
			ID string `json:"id"`
		}
		s.decode(w, &created)
		got, err := repo.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		require.False(t, got.CreatedAt.Before(start), "createdAt %s before start %s", got.CreatedAt, start)
		require.False(t, got.CreatedAt.After(end), "createdAt %s after end %s", got.CreatedAt, end)
	}
}

func TestSubmissionsWithEmptyBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/contact", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var contactErr struct {
		Code          string   `json:"code"`
		MissingFields []string `json:"missing_fields"`
	}
	s.decode(w, &contactErr)
	assert.Equal(t, "VALIDATION_ERROR", contactErr.Code)
	assert.Equal(t, []string{"name", "phone", "message", "inquiryType"}, contactErr.MissingFields)

	w = s.do(http.MethodPost, "/api/receipt-requests", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var receiptErr struct {
		Code          string   `json:"code"`
		MissingFields []string `json:"missing_fields"`
	}
	s.decode(w, &receiptErr)
	assert.Equal(t, "VALIDATION_ERROR", receiptErr.Code)
	assert.ElementsMatch(t, []string{"fullName", "phone", "projectService", "amountPaid", "date"}, receiptErr.MissingFields)

	w = s.do(http.MethodPost, "/api/contact", "{", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INVALID_PAYLOAD"`)
}

func TestReceiptFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.provisionAndLogin()

	w := s.do(http.MethodPost, "/api/receipt-requests",
		`{"fullName":"Jane Doe","phone":"+1 555 0100","projectService":"Logo Design","amountPaid":150,"date":"2024-03-05"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	s.decode(w, &created)
	assert.Equal(t, "Receipt request submitted successfully", created.Message)

	w = s.do(http.MethodPost, "/api/admin/receipt-requests/"+created.ID+"/generate-pdf", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = s.do(http.MethodGet, "/api/admin/dashboard", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var dash map[string]int
	s.decode(w, &dash)
	assert.Equal(t, 1, dash["totalReceiptRequests"])
	assert.Equal(t, 1, dash["pendingReceiptRequests"])
}

func TestChatFlow(t *testing.T) {
	s := newTestServer(t)
	token := s.provisionAndLogin()

	w := s.do(http.MethodPost, "/api/chat/messages", `{"sessionId":"session-1","message":"Hello","sender":"user"}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = s.do(http.MethodPost, "/api/admin/chat/messages", `{"sessionId":"session-1","message":"Hi there"}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	s.app.Chat.WaitForNotifications()

	w = s.do(http.MethodGet, "/api/chat/messages/session-1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var msgs []map[string]any
	s.decode(w, &msgs)
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0]["sender"])
	assert.Equal(t, "admin", msgs[1]["sender"])

	w = s.do(http.MethodPost, "/api/admin/chat/sessions/session-1/resolve", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/admin/chat/sessions", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var sessions []map[string]any
	s.decode(w, &sessions)
	require.Len(t, sessions, 1)
	assert.Equal(t, "resolved", sessions[0]["status"])
	assert.EqualValues(t, 2, sessions[0]["messageCount"])
	assert.Contains(t, sessions[0]["whatsappNotifyUrl"], "https://wa.me/+15550199?text=")

	w = s.do(http.MethodPost, "/api/admin/chat/sessions/unknown/resolve", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	w := httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	s.app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
