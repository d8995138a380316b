package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi"

	"github.com/amoredev/amore/internal/entities"
	"github.com/amoredev/amore/internal/throttler"
	"github.com/amoredev/amore/pkg/api"
)

// interaction binds an interaction use case to its route contract.
type interaction struct {
	action  string
	status  int
	message string
	call    func(ctx context.Context, actorID, targetID string) error
}

func (s *server) interactionHandler(i interaction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID := getActorID(r.Context())
		targetID := chi.URLParam(r, "id")

		key := throttler.Key(i.action, actorID, targetID)
		if s.throttler.Throttle(key) {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		if err := i.call(r.Context(), actorID, targetID); err != nil {
			writeServiceError(getLogger(r.Context()), w, err)
			return
		}

		s.throttler.Reset(key)

		writeOK(w, i.status, api.MessageResponse{Message: i.message})
	}
}

func (s *server) profileListHandler(list func(ctx context.Context, actorID string) ([]entities.ShortProfile, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pp, err := list(r.Context(), getActorID(r.Context()))
		if err != nil {
			writeServiceError(getLogger(r.Context()), w, err)
			return
		}

		out := make([]api.Profile, len(pp))
		for i, p := range pp {
			out[i] = toAPIProfile(p)
		}

		writeOK(w, http.StatusOK, out)
	}
}

func (s *server) listTagsHandler(w http.ResponseWriter, r *http.Request) {
	tt, err := s.s.ListTags(r.Context(), getActorID(r.Context()))
	if err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, tt)
}

func (s *server) addTagHandler(w http.ResponseWriter, r *http.Request) {
	var req api.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if !req.IsValid() {
		writeError(w, http.StatusBadRequest, "tag name is required")
		return
	}

	if err := s.s.AddTag(r.Context(), getActorID(r.Context()), req.Name); err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusCreated, api.MessageResponse{Message: "Tag linked successfully"})
}

func (s *server) removeTagHandler(w http.ResponseWriter, r *http.Request) {
	var req api.TagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if !req.IsValid() {
		writeError(w, http.StatusBadRequest, "tag name is required")
		return
	}

	if err := s.s.RemoveTag(r.Context(), getActorID(r.Context()), req.Name); err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, api.MessageResponse{Message: "Tag unlinked successfully"})
}

func (s *server) popularTagsHandler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("limit")
	if raw == "" || !govalidator.IsInt(raw) {
		writeErrorf(w, http.StatusBadRequest, "limit %q is not a number", raw)
		return
	}
	limit, _ := strconv.Atoi(raw)

	tt, err := s.s.PopularTags(r.Context(), limit)
	if err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	out := make([]api.TagCount, len(tt))
	for i, t := range tt {
		out[i] = api.TagCount{Name: t.Name, Count: t.Count}
	}

	writeOK(w, http.StatusOK, out)
}

func (s *server) reorderPhotosHandler(w http.ResponseWriter, r *http.Request) {
	var req api.ReorderPhotosRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode json")
		return
	}

	if err := s.s.ReorderPhotos(r.Context(), getActorID(r.Context()), req.Order); err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, api.MessageResponse{Message: "Photo order updated successfully"})
}

func (s *server) uploadPhotoHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := getPhotoIndex(w, r)
	if !ok {
		return
	}

	f, _, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer f.Close() // nolint

	name, err := s.s.UploadPhoto(r.Context(), getActorID(r.Context()), index, f)
	if err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusCreated, api.UploadPhotoResponse{Name: name})
}

func (s *server) deletePhotoHandler(w http.ResponseWriter, r *http.Request) {
	index, ok := getPhotoIndex(w, r)
	if !ok {
		return
	}

	if err := s.s.DeletePhoto(r.Context(), getActorID(r.Context()), index); err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, api.MessageResponse{Message: "Photo deleted successfully"})
}

func (s *server) listNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	nn, err := s.s.ListNotifications(r.Context(), getActorID(r.Context()))
	if err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	out := make([]api.Notification, len(nn))
	for i, n := range nn {
		out[i] = api.Notification{
			ID:        n.ID,
			Type:      string(n.Type),
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	writeOK(w, http.StatusOK, out)
}

func (s *server) markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !govalidator.IsUUID(id) {
		writeError(w, http.StatusBadRequest, "notification id is invalid")
		return
	}

	if err := s.s.MarkNotificationRead(r.Context(), getActorID(r.Context()), id); err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, api.MessageResponse{Message: "Notification marked as read"})
}

func (s *server) deleteNotificationHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !govalidator.IsUUID(id) {
		writeError(w, http.StatusBadRequest, "notification id is invalid")
		return
	}

	if err := s.s.DeleteNotification(r.Context(), getActorID(r.Context()), id); err != nil {
		writeServiceError(getLogger(r.Context()), w, err)
		return
	}

	writeOK(w, http.StatusOK, api.MessageResponse{Message: "Notification deleted successfully"})
}

func getPhotoIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	if !govalidator.IsNumeric(raw) {
		writeError(w, http.StatusBadRequest, "photo index must be a number")
		return 0, false
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "photo index must be a number")
		return 0, false
	}

	return index, true
}

func toAPIProfile(p entities.ShortProfile) api.Profile {
	return api.Profile{
		ID:         p.ID,
		Username:   p.Username,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Photo:      p.Photo,
		FameRating: p.FameRating,
	}
}
