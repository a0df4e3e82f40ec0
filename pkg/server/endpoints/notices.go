package endpoints

import (
	"bytes"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// CreateNoticeRequest is the POST /notices payload. Body is markdown.
type CreateNoticeRequest struct {
	PropertyID  *uint      `json:"property_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	NoticeType  string     `json:"notice_type"`
	IsPublished bool       `json:"is_published"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

// RegisterNoticesEndpoints registers the notices endpoints
func RegisterNoticesEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	noticeRouter := s.Router.PathPrefix("/notices").Subrouter()
	noticeRouter.Use(jwtMiddleware.Middleware)
	noticeRouter.HandleFunc("", handleListNotices(s)).Methods("GET")
	noticeRouter.HandleFunc("", handleCreateNotice(s)).Methods("POST")
	noticeRouter.HandleFunc("/{id}/html", handleNoticeHTML(s)).Methods("GET")
}

func handleListNotices(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		notices, err := s.NoticesStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, notices)
	}
}

func handleCreateNotice(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageNotices, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreateNoticeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" || req.Body == "" {
			respondWithError(w, http.StatusBadRequest, "title and body are required")
			return
		}

		notice := &model.Notice{
			OrganizationID: orgID,
			PropertyID:     req.PropertyID,
			Title:          req.Title,
			Body:           req.Body,
			NoticeType:     req.NoticeType,
			IsPublished:    req.IsPublished,
			StartsAt:       req.StartsAt,
			EndsAt:         req.EndsAt,
		}
		if err := s.NoticesStore.Create(notice); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, notice)
	}
}

func handleNoticeHTML(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		noticeID, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid notice id")
			return
		}

		notice, err := s.NoticesStore.Get(noticeID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionViewDashboard, notice); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(notice.Body), &buf); err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to render notice")
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(buf.Bytes())
	}
}
