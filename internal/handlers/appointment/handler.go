package appointment

import (
	"net/http"
	"strconv"
	"xterminio/infras/otel"
	"xterminio/internal/domains/appointment/model/dto"
	"xterminio/internal/domains/appointment/service"
	"xterminio/shared/constant"
	"xterminio/shared/failure"
	"xterminio/shared/timezone"
	"xterminio/shared/validator"
	"xterminio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Patch("/{id}/status", handler.UpdateAppointmentStatus)
		routerGroup.Delete("/{id}", handler.DeleteAppointment)
	})
}

// CreateAppointment schedules a new service visit.
// @Summary Create a new appointment
// @Description Schedule a service visit, optionally copying contact details from a saved client.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Message "Appointment created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
func (handler *Handler) CreateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Appointment created successfully")
}

// GetAppointments lists appointments in chronological order.
// @Summary List appointments
// @Description List appointments, optionally limited to a date range, a range preset or a status.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param date_from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param status query string false "Status filter; 'Todos' means no filter"
// @Param range query string false "Date range preset: 'Hoy', 'Próximos 7 días' or 'Todos'"
// @Success 200 {object} dto.GetAppointmentsResponse "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
func (handler *Handler) GetAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	req := dto.ListAppointmentsRequest{
		DateFrom: request.URL.Query().Get(constant.RequestParamDateFrom),
		DateTo:   request.URL.Query().Get(constant.RequestParamDateTo),
		Status:   request.URL.Query().Get(constant.RequestParamStatus),
		Range:    request.URL.Query().Get(constant.RequestParamRange),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(writer, err)

		return
	}

	if err := req.ApplyRange(timezone.Now()); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve date range preset")

		response.WithError(writer, err)

		return
	}

	appointments, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, appointments)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// @Summary Update an appointment status
// @Description Set the status of an appointment. An unknown id is silently ignored.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Appointment status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/status [patch]
func (handler *Handler) UpdateAppointmentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointmentStatus")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid appointment id")

		response.WithError(writer, failure.BadRequestFromString("invalid appointment id"))

		return
	}

	req := dto.UpdateAppointmentStatusRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update appointment status")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Appointment status updated successfully")
}

// DeleteAppointment removes an appointment from the agenda.
// @Summary Delete an appointment
// @Description Delete an appointment. An unknown id is silently ignored.
// @Tags Appointment
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} response.Message "Appointment deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [delete]
func (handler *Handler) DeleteAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAppointment")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid appointment id")

		response.WithError(writer, failure.BadRequestFromString("invalid appointment id"))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete appointment")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Appointment deleted successfully")
}
