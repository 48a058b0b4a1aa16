package client

import (
	"net/http"
	"strconv"
	"xterminio/infras/otel"
	"xterminio/internal/domains/client/model/dto"
	"xterminio/internal/domains/client/service"
	"xterminio/shared/constant"
	"xterminio/shared/failure"
	"xterminio/shared/timezone"
	"xterminio/shared/validator"
	"xterminio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Client
	otel    otel.Otel
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/due", handler.GetMonthlyDueClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Delete("/{id}", handler.DeleteClient)
	})
}

// CreateClient adds an entry to the client directory.
// @Summary Create a new client
// @Description Add a client to the directory. Monthly clients carry a reminder day of month.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} response.Message "Client created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [post]
func (handler *Handler) CreateClient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Client created successfully")
}

// GetClients lists the whole directory.
// @Summary List clients
// @Description List all clients, sorted by business name and then personal name.
// @Tags Client
// @Produce json
// @Success 200 {object} dto.GetClientsResponse "List of clients"
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
func (handler *Handler) GetClients(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	clients, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, clients)
}

// GetMonthlyDueClients lists the monthly clients whose reminder fires today.
// @Summary List monthly clients due today
// @Description List monthly clients whose reminder day matches the given date, defaulting to today.
// @Tags Client
// @Produce json
// @Param today query string false "Reference date (YYYY-MM-DD), defaults to the current day"
// @Success 200 {object} dto.GetClientsResponse "List of due clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/due [get]
func (handler *Handler) GetMonthlyDueClients(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyDueClients")
	defer scope.End()

	today := timezone.Now()

	if raw := request.URL.Query().Get(constant.RequestParamToday); raw != "" {
		parsed, err := timezone.Parse(constant.DayFormat, raw)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("today", raw).Msg("invalid reference date")

			response.WithError(writer, failure.BadRequestFromString("invalid reference date, expected YYYY-MM-DD"))

			return
		}

		today = parsed
	}

	clients, err := handler.service.MonthlyDue(ctx, today)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get due clients")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Due clients computed for " + today.Format(constant.DayFormat))

	response.WithJSON(writer, http.StatusOK, clients)
}

// GetClientByID fetches a single directory entry.
// @Summary Get a client
// @Description Get a single client by id.
// @Tags Client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} dto.ClientResponse "Client"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [get]
func (handler *Handler) GetClientByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid client id")

		response.WithError(writer, failure.BadRequestFromString("invalid client id"))

		return
	}

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get client")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, client)
}

// DeleteClient removes a directory entry.
// @Summary Delete a client
// @Description Delete a client. Appointments keep their contact snapshot; nothing cascades.
// @Tags Client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} response.Message "Client deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [delete]
func (handler *Handler) DeleteClient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid client id")

		response.WithError(writer, failure.BadRequestFromString("invalid client id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete client")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Client deleted successfully")
}
