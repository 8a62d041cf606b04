package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/goevery/witness/internal/handler"
	"github.com/goevery/witness/internal/ierr"
	"github.com/goevery/witness/internal/requestid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type RESTServer struct {
	logger *zap.Logger

	heartbeatHandler handler.HeartbeatHandlerInterface
}

func NewRESTServer(
	logger *zap.Logger,
	heartbeatHandler handler.HeartbeatHandlerInterface,
) *RESTServer {
	return &RESTServer{
		logger,
		heartbeatHandler,
	}
}

// Register mounts the heartbeat trigger on every method and on every path
// equal to basePath or below it. An empty basePath matches everything.
func (s *RESTServer) Register(router *mux.Router, basePath string) {
	router.Use(s.requestIdMiddleware)

	basePath = strings.TrimSuffix(basePath, "/")

	router.MatcherFunc(func(r *http.Request, _ *mux.RouteMatch) bool {
		return underBasePath(r.URL.Path, basePath)
	}).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := s.heartbeatHandler.Handle(r.Context())
		if err != nil {
			fields := []zap.Field{
				zap.String("code", string(ierr.CodeOf(err))),
				zap.Error(err),
			}
			if id, ok := requestid.FromContext(r.Context()); ok {
				fields = append(fields, zap.String("requestId", id))
			}
			s.logger.Error("failed to handle heartbeat request", fields...)

			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(response.StatusCode)
		io.WriteString(w, response.Body)
	})
}

func (s *RESTServer) requestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := requestid.Generate()
		if err != nil {
			s.logger.Warn("failed to generate request id", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(requestid.WithRequestId(r.Context(), id)))
	})
}

func underBasePath(path string, basePath string) bool {
	if basePath == "" {
		return true
	}

	return path == basePath || strings.HasPrefix(path, basePath+"/")
}
