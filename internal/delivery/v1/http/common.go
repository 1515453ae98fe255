package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/usecase"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func deleteEntity(w http.ResponseWriter, r *http.Request, catalog usecase.CatalogUC, log logger.Logger, kind domain.EntityKind) {
	id := chi.URLParam(r, "id")

	deleted, err := catalog.Delete(r.Context(), kind, id)
	if err != nil {
		logMutationError(log, err)
		WriteError(w, err)
		return
	}
	if !deleted {
		WriteError(w, e.Wrap(kind.String()+" "+id, e.ErrNotFound))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// logMutationError пишет ошибки клиента как warn, ошибки хранилища как error.
func logMutationError(log logger.Logger, err error) {
	if errors.Is(err, e.ErrValidation) || errors.Is(err, e.ErrNotFound) {
		log.Warnf("Mutation rejected: %s", err.Error())
		return
	}

	log.Errorf(err, "mutation failed")
}

// requestLogger логирует метод, путь, статус и длительность каждого запроса.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Debugf(
				"%s %s -> %d (%s) request_id=%s",
				r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()),
			)
		})
	}
}
