package handlers

import (
	"net/http"
	"testing"

	"portfolio_backend/internal/adapter/http/handlers/mocks"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestRequireAdmin(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase, *bool) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		reached := false
		r := newTestRouter()
		r.GET("/admin/ping", RequireAdmin(uc), func(c *gin.Context) {
			reached = true
			session, ok := AdminSession(c)
			if !ok || session.Username != "admin" {
				t.Fatalf("expected admin session on context, got %+v", session)
			}
			c.Status(http.StatusNoContent)
		})
		return r, uc, &reached
	}

	t.Run("missing header", func(t *testing.T) {
		r, _, reached := setup(t)
		w := performRequest(r, http.MethodGet, "/admin/ping", "")
		if w.Code != http.StatusUnauthorized || *reached {
			t.Fatalf("expected 401 before handler, got %d reached=%v", w.Code, *reached)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r, _, reached := setup(t)
		w := performRequest(r, http.MethodGet, "/admin/ping", "", "Authorization", "Basic abc")
		if w.Code != http.StatusUnauthorized || *reached {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		r, uc, reached := setup(t)
		uc.EXPECT().Authenticate(gomock.Any(), "expired").Return(entities.AdminSession{}, usecase.ErrUnauthorized)
		w := performRequest(r, http.MethodGet, "/admin/ping", "", "Authorization", "Bearer expired")
		if w.Code != http.StatusUnauthorized || *reached {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		r, uc, reached := setup(t)
		uc.EXPECT().Authenticate(gomock.Any(), "good").Return(entities.AdminSession{Username: "admin", Role: entities.AdminRole}, nil)
		w := performRequest(r, http.MethodGet, "/admin/ping", "", "Authorization", "bearer good")
		if w.Code != http.StatusNoContent || !*reached {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
