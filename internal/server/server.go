// Package server Amore
//
// Amore is the social interaction service of the dating platform. It keeps
// likes, views and blocks, maintains fame ratings and dispatches match
// notifications.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"github.com/amoredev/amore/internal/auth"
	"github.com/amoredev/amore/internal/service"
	"github.com/amoredev/amore/internal/throttler"
	"github.com/amoredev/amore/pkg/api"
)

const tokenCacheSize = 100000

type server struct {
	s service.Service
	a auth.Authenticator

	tokenCache *lru.ARCCache
	throttler  throttler.Throttler
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, a auth.Authenticator, r chi.Router, maxBodySize int64, throttlePeriod time.Duration) {
	r.Use(
		loggerMiddleware,
		setHeadersMiddleware,
		middleware.StripSlashes,
		recovererMiddleware,
		bodyLimiterMiddleware(maxBodySize),
		cors.AllowAll().Handler,
	)

	c, err := lru.NewARC(tokenCacheSize)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create token cache")
	}

	srv := server{
		s: s,
		a: a,

		tokenCache: c,
		throttler:  throttler.New(throttlePeriod),
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/tags/popular", srv.popularTagsHandler)

		r.Group(func(r chi.Router) {
			r.Use(srv.authMiddleware)

			r.Route("/profiles", func(r chi.Router) {
				r.Post("/{id}/like", srv.interactionHandler(interaction{
					action: "like", status: http.StatusCreated, message: "liked", call: s.Like,
				}))
				r.Post("/{id}/unlike", srv.interactionHandler(interaction{
					action: "unlike", status: http.StatusOK, message: "unliked", call: s.Unlike,
				}))
				r.Post("/{id}/view", srv.interactionHandler(interaction{
					action: "view", status: http.StatusCreated, message: "view recorded", call: s.View,
				}))
				r.Post("/{id}/block", srv.interactionHandler(interaction{
					action: "block", status: http.StatusOK, message: "User blocked successfully", call: s.Block,
				}))
				r.Post("/{id}/unblock", srv.interactionHandler(interaction{
					action: "unblock", status: http.StatusOK, message: "User unblocked successfully", call: s.Unblock,
				}))

				r.Route("/me", func(r chi.Router) {
					r.Get("/liked", srv.profileListHandler(s.GetLiked))
					r.Get("/blocked", srv.profileListHandler(s.GetBlocked))
					r.Get("/viewed", srv.profileListHandler(s.GetViewed))
					r.Get("/viewers", srv.profileListHandler(s.GetViewers))
					r.Get("/matches", srv.profileListHandler(s.GetMatched))

					r.Get("/tags", srv.listTagsHandler)
					r.Post("/tags", srv.addTagHandler)
					r.Delete("/tags", srv.removeTagHandler)

					r.Put("/photos/order", srv.reorderPhotosHandler)
					r.Post("/photos/{index}", srv.uploadPhotoHandler)
					r.Delete("/photos/{index}", srv.deletePhotoHandler)

					r.Get("/notifications", srv.listNotificationsHandler)
					r.Post("/notifications/{id}/read", srv.markNotificationReadHandler)
					r.Delete("/notifications/{id}", srv.deleteNotificationHandler)
				})
			})
		})
	})
}

func getLogger(ctx context.Context) logrus.FieldLogger {
	return ctx.Value(logCtxKey{}).(logrus.FieldLogger)
}

func writeErrorf(w http.ResponseWriter, status int, format string, args ...interface{}) {
	body, _ := json.Marshal(api.Error{
		Error: fmt.Sprintf(format, args...),
	})

	w.WriteHeader(status)
	// nolint:gosec,errcheck
	w.Write(body)
}

func writeError(w http.ResponseWriter, s int, message string) {
	writeErrorf(w, s, message)
}

func writeInternalError(l logrus.FieldLogger, w http.ResponseWriter, message string) {
	l.Error(string(debug.Stack()))
	l.Error(message)
	// We don't want to expose internal error to user. So we will just send typical error.
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	body, _ := json.Marshal(v)

	w.WriteHeader(status)
	// nolint:gosec,errcheck
	w.Write(body)
}

func writeServiceError(l logrus.FieldLogger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrBlocked):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrSelfAction),
		errors.Is(err, service.ErrAlreadyLiked),
		errors.Is(err, service.ErrAlreadyViewed),
		errors.Is(err, service.ErrTagLimit),
		errors.Is(err, service.ErrNoPhoto):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeInternalError(l, w, err.Error())
	}
}
