package health

import (
	"net/http"
	"xterminio/infras/sqlite"
	"xterminio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db *sqlite.Connection
}

func New(db *sqlite.Connection) Handler {
	return Handler{db: db}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports whether the agenda database is reachable.
// @Summary Health check
// @Description Ping the database and report service health.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message "Service is healthy"
// @Failure 503 {object} response.Message "Service is unhealthy"
// @Router /v1/health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if err := handler.db.DB.PingContext(request.Context()); err != nil {
		log.Error().Err(err).Msg("database ping failed")

		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}
