package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/finsite/internal/domain"
	dialogueuc "github.com/kailas-cloud/finsite/internal/usecase/dialogue"
	facetsuc "github.com/kailas-cloud/finsite/internal/usecase/facets"
	handoffuc "github.com/kailas-cloud/finsite/internal/usecase/handoff"
	healthuc "github.com/kailas-cloud/finsite/internal/usecase/health"
	recommenduc "github.com/kailas-cloud/finsite/internal/usecase/recommend"
	searchuc "github.com/kailas-cloud/finsite/internal/usecase/search"
)

// APIPrefix is the mount point of every route except /health and /metrics.
const APIPrefix = "/api/v1"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the finsite JSON API.
type Server struct {
	search        *searchuc.Service
	facets        *facetsuc.Service
	recommend     *recommenduc.Resolver
	handoff       *handoffuc.Service
	dialogue      *dialogueuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	facets *facetsuc.Service,
	recommend *recommenduc.Resolver,
	handoff *handoffuc.Service,
	dialogue *dialogueuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:    search,
		facets:    facets,
		recommend: recommend,
		handoff:   handoff,
		dialogue:  dialogue,
		health:    health,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		missingFieldsHandler,
		sentinelHandler(domain.ErrSessionNotFound, http.StatusNotFound, ErrorCodeSessionNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeNotFound),
		sentinelHandler(domain.ErrInvalidTransition, http.StatusConflict, ErrorCodeInvalidTransition),
		sentinelHandler(domain.ErrUnknownOption, http.StatusBadRequest, ErrorCodeUnknownOption),
		sentinelHandler(domain.ErrUnknownDimension, http.StatusBadRequest, ErrorCodeUnknownDimension),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, ErrorCodeValidationFailed),
		sentinelHandler(context.Canceled, http.StatusRequestTimeout, ErrorCodeCanceled),
		sentinelHandler(context.DeadlineExceeded, http.StatusRequestTimeout, ErrorCodeCanceled),
	}
	return s
}

// Mount registers every route on r.
func (s *Server) Mount(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/suggest", s.Suggest)
		r.Get("/discover", s.Discover)

		r.Get("/facets", s.FacetTable)
		r.Post("/facet-views", s.OpenFacetView)
		r.Route("/facet-views/{id}", func(r chi.Router) {
			r.Get("/", s.GetFacetView)
			r.Delete("/", s.CloseFacetView)
			r.Post("/toggle", s.ToggleFacet)
			r.Delete("/selections", s.ClearFacets)
		})

		r.Get("/recommendations", s.Recommendations)
		r.Get("/destinations", s.Destination)

		r.Put("/handoff/{key}", s.PutHandoff)
		r.Delete("/handoff/{key}", s.TakeHandoff)

		r.Get("/demo-options", s.DemoOptions)
		r.Post("/conversations", s.OpenConversation)
		r.Route("/conversations/{id}", func(r chi.Router) {
			r.Get("/", s.GetConversation)
			r.Delete("/", s.CloseConversation)
			r.Post("/roles/more", s.ShowMoreRoles)
			r.Post("/role", s.SelectRole)
			r.Post("/problem", s.SelectProblem)
			r.Post("/messages", s.SendMessage)
			r.Post("/demo-form", s.ShowDemoForm)
			r.Patch("/demo-form", s.UpdateDemoForm)
			r.Delete("/demo-form", s.CancelDemo)
			r.Post("/demo-form/next", s.NextStep)
			r.Post("/demo-form/back", s.BackStep)
			r.Post("/demo-form/submit", s.SubmitDemo)
			r.Post("/contact", s.SubmitContact)
		})
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, HealthResponse{Status: string(report.Status), Checks: checks})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// bindQuery binds one form-style query parameter. Optional parameters take a pointer to a pointer.
func bindQuery(r *http.Request, name string, required bool, dest any) error {
	return runtime.BindQueryParameter("form", true, required, name, r.URL.Query(), dest) //nolint:wrapcheck // reported as bad request
}

// pathParam binds a simple-style path parameter.
func pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return v, err //nolint:wrapcheck // reported as bad request
}

// decodeJSON reads the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Debug("invalid request", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage reduces err to its sentinel so internal details never reach clients.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrSessionNotFound,
		domain.ErrNotFound,
		domain.ErrInvalidTransition,
		domain.ErrStepIncomplete,
		domain.ErrUnknownOption,
		domain.ErrUnknownDimension,
		domain.ErrValidation,
		context.Canceled,
		context.DeadlineExceeded,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// missingFieldsHandler reports the empty required fields of a blocked form step.
func missingFieldsHandler(w http.ResponseWriter, err error, msg string) bool {
	var mfe *domain.MissingFieldsError
	if !errors.As(err, &mfe) {
		return false
	}
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Code:    ErrorCodeStepIncomplete,
		Message: msg,
		Fields:  mfe.Fields,
	})
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
