package health

import (
	"encoding/json"
	"net/http"
	"tourdesk/config"
	"tourdesk/shared/constant"
	"tourdesk/shared/logger"
	"tourdesk/shared/timezone"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{
		cfg: cfg,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/health", handler.Health)
}

// HealthResponse is written without the shared envelope: the uptime
// monitor that polls this endpoint expects this exact shape.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// Health reports liveness.
// @Summary Health check
// @Description Report service liveness, the current time and the running environment.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	res := HealthResponse{
		Status:      "OK",
		Timestamp:   timezone.Now().Format(constant.DateFormat),
		Environment: handler.cfg.Server.Env,
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		logger.ErrorWithStack(err)
	}
}
