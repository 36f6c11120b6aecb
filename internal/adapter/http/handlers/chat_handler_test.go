package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	response "portfolio_backend/internal/adapter/http/dto/response"
	"portfolio_backend/internal/adapter/http/handlers/mocks"
	"portfolio_backend/internal/domain/entities"
	"portfolio_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newChatRouter(t *testing.T, adminWhatsApp string) (*gin.Engine, *mocks.MockIChatUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIChatUseCase(ctrl)
	h := NewChatHandler(uc, adminWhatsApp, zap.NewNop())

	r := newTestRouter()
	r.POST("/api/chat/messages", h.PostMessage)
	r.GET("/api/chat/messages/:sessionId", h.ListMessages)
	r.GET("/api/admin/chat/sessions", h.ListSessions)
	r.GET("/api/admin/chat/sessions/:sessionId/messages", h.ListMessages)
	r.PUT("/api/admin/chat/sessions/:sessionId", h.UpdateSessionStatus)
	r.POST("/api/admin/chat/sessions/:sessionId/resolve", h.ResolveSession)
	r.POST("/api/admin/chat/messages", h.Reply)
	return r, uc
}

func TestChatHandler_PostMessage(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, uc := newChatRouter(t, "")
		uc.EXPECT().PostVisitorMessage(gomock.Any(), usecase.ChatMessageInput{SessionID: "s-1", Message: "hi", Sender: "user"}).
			Return(entities.ChatMessage{ID: "m-1", SessionID: "s-1", Message: "hi", Sender: entities.ChatSenderUser, CreatedAt: time.Now()}, nil)

		w := performRequest(r, http.MethodPost, "/api/chat/messages", `{"sessionId":"s-1","message":"hi","sender":"user"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got response.ChatMessageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.ID != "m-1" || got.Sender != "user" {
			t.Fatalf("unexpected body %s: %v", w.Body.String(), err)
		}
	})

	t.Run("admin sender rejected", func(t *testing.T) {
		r, uc := newChatRouter(t, "")
		uc.EXPECT().PostVisitorMessage(gomock.Any(), gomock.Any()).
			Return(entities.ChatMessage{}, &usecase.ValidationError{InvalidFields: []string{"sender"}})

		w := performRequest(r, http.MethodPost, "/api/chat/messages", `{"sessionId":"s-1","message":"hi","sender":"admin"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestChatHandler_ListMessages(t *testing.T) {
	r, uc := newChatRouter(t, "")
	uc.EXPECT().ListMessages(gomock.Any(), "s-1").Return([]entities.ChatMessage{{ID: "1"}, {ID: "2"}}, nil).Times(2)

	for _, path := range []string{"/api/chat/messages/s-1", "/api/admin/chat/sessions/s-1/messages"} {
		w := performRequest(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var got []response.ChatMessageResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 2 {
			t.Fatalf("%s: unexpected body %s", path, w.Body.String())
		}
	}
}

func TestChatHandler_ListSessions(t *testing.T) {
	r, uc := newChatRouter(t, "+1 555 0100")
	uc.EXPECT().ListSessions(gomock.Any()).Return([]entities.ChatSession{
		{SessionID: "session-abcdefgh", MessageCount: 3, Status: "active"},
	}, nil)

	w := performRequest(r, http.MethodGet, "/api/admin/chat/sessions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []response.ChatSessionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].MessageCount != 3 || got[0].WhatsAppNotifyURL == "" {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestChatHandler_SessionStatus(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		r, uc := newChatRouter(t, "")
		uc.EXPECT().UpdateSessionStatus(gomock.Any(), "s-1", "resolved").
			Return(entities.ChatSessionState{SessionID: "s-1", Status: "resolved"}, nil)

		w := performRequest(r, http.MethodPut, "/api/admin/chat/sessions/s-1", `{"status":"resolved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("resolve unknown session", func(t *testing.T) {
		r, uc := newChatRouter(t, "")
		uc.EXPECT().ResolveSession(gomock.Any(), "ghost").Return(entities.ChatSessionState{}, usecase.ErrChatSessionNotFound)

		w := performRequest(r, http.MethodPost, "/api/admin/chat/sessions/ghost/resolve", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestChatHandler_Reply(t *testing.T) {
	r, uc := newChatRouter(t, "")
	uc.EXPECT().PostAdminReply(gomock.Any(), "s-1", "on it").
		Return(entities.ChatMessage{ID: "m-2", SessionID: "s-1", Message: "on it", Sender: entities.ChatSenderAdmin}, nil)

	w := performRequest(r, http.MethodPost, "/api/admin/chat/messages", `{"sessionId":"s-1","message":"on it","sender":"user"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var got response.ChatMessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.Sender != "admin" {
		t.Fatalf("unexpected body %s: %v", w.Body.String(), err)
	}
}
