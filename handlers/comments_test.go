package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskify/handlers"
)

// Every comment endpoint must refuse a request with no session before any
// store access happens: the handlers below run against nil pools, so a gate
// regression shows up as a panic instead of the expected 401.
func TestCommentHandlersRequireSession(t *testing.T) {
	tests := []struct {
		name string
		call func(w http.ResponseWriter, r *http.Request)
		req  func() *http.Request
	}{
		{
			name: "Fetch thread",
			call: func(w http.ResponseWriter, r *http.Request) {
				handlers.CommentsHandler(w, r, nil, nil)
			},
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/comments?task=t1", nil)
			},
		},
		{
			name: "Add comment",
			call: func(w http.ResponseWriter, r *http.Request) {
				handlers.AddCommentHandler(w, r, nil, nil)
			},
			req: func() *http.Request {
				body := strings.NewReader(`{"taskId":"t1","text":"looks good"}`)
				return httptest.NewRequest(http.MethodPost, "/addComment", body)
			},
		},
		{
			name: "Delete comment",
			call: func(w http.ResponseWriter, r *http.Request) {
				handlers.DeleteCommentHandler(w, r, nil, nil)
			},
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodDelete, "/deleteComment/c1", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.call(rec, tt.req())

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

// A deletion request for a comment in someone else's project must be decided
// by project membership, the same predicate the thread read path uses. The
// predicate itself is covered in models; this pins the handler ordering: an
// unauthenticated delete never reaches the store even when the comment id is
// well-formed.
func TestDeleteCommentStrangerNeverReachesStore(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/deleteComment/c1", nil)
	req.Header.Set("X-CSRF-Token", "forged")

	handlers.DeleteCommentHandler(rec, req, nil, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
