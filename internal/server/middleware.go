package server

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/tomasen/realip"

	"github.com/amoredev/amore/internal/auth"
)

type logCtxKey struct{}
type actorCtxKey struct{}

// getActorID returns the profile id put into context by authMiddleware.
func getActorID(ctx context.Context) string {
	return ctx.Value(actorCtxKey{}).(string)
}

func loggerMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		log := logrus.WithField("ip", realip.FromRequest(r))

		ctx := context.WithValue(r.Context(), logCtxKey{}, log)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

func setHeadersMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func recovererMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log := getLogger(r.Context())
				log.Error("service recovered from panic")
				log.Error("stacktrace:")
				log.Error(string(debug.Stack()))
				log.Error("panic:")
				log.Error(spew.Sdump(rvr))

				writeInternalError(log, w, "panic: internal error")
			}
		}()

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

func bodyLimiterMiddleware(maxBodySize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// authMiddleware resolves the bearer token into the actor's profile id.
// Resolved tokens are kept in an ARC cache to spare the identity service.
func (s *server) authMiddleware(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			writeError(w, http.StatusUnauthorized, "authorization required")
			return
		}

		var id string
		if v, ok := s.tokenCache.Get(token); ok {
			id = v.(string)
		} else {
			var err error
			if id, err = s.a.Resolve(r.Context(), token); err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					writeError(w, http.StatusUnauthorized, "invalid token")
					return
				}
				writeInternalError(getLogger(r.Context()), w, err.Error())
				return
			}
			s.tokenCache.Add(token, id)
		}

		ctx := context.WithValue(r.Context(), actorCtxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}
