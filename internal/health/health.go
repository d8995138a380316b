// Package health provides handler for health checks.
package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/amoredev/amore/pkg/api"
)

// nolint:gochecknoglobals
var (
	version = "dev"
	commit  = "unknown"
)

// GetVersion returns service's version and commit.
func GetVersion() string {
	return fmt.Sprintf("%s-%s", version, commit)
}

// VersionResponse ...
type VersionResponse struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Pinger pings a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc is wrapper for raw func.
type PingFunc func(ctx context.Context) error

// Ping ...
func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// SetupRouter mounts /health which pings every registered store
// and names the failed one in the response.
func SetupRouter(r chi.Router, stores map[string]Pinger) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()

		gr, ctx := errgroup.WithContext(ctx)

		for name := range stores {
			name, p := name, stores[name]
			gr.Go(func() error {
				if err := p.Ping(ctx); err != nil {
					logrus.WithError(err).WithField("store", name).Error("health check failed")
					return fmt.Errorf("%s: %w", name, err)
				}
				return nil
			})
		}

		if err := gr.Wait(); err != nil {
			data, _ := json.Marshal(struct {
				api.Error
				VersionResponse
			}{
				Error:           api.Error{Error: err.Error()},
				VersionResponse: VersionResponse{Version: version, Commit: commit},
			})
			w.WriteHeader(http.StatusInternalServerError)
			w.Write(data) // nolint

			return
		}

		data, _ := json.Marshal(VersionResponse{Version: version, Commit: commit})

		w.WriteHeader(http.StatusOK)
		w.Write(data) // nolint
	})
}
