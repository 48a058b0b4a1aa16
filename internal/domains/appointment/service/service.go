package service

import (
	"context"
	"fmt"
	"xterminio/config"
	"xterminio/infras/otel"
	"xterminio/internal/domains/appointment/model"
	"xterminio/internal/domains/appointment/model/dto"
	"xterminio/internal/domains/appointment/repository"
	clientModel "xterminio/internal/domains/client/model"
	clientRepository "xterminio/internal/domains/client/repository"
	"xterminio/shared"
	"xterminio/shared/constant"
	gDto "xterminio/shared/dto"

	"github.com/rs/zerolog/log"
)

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) error
	List(ctx context.Context, req dto.ListAppointmentsRequest) (dto.GetAppointmentsResponse, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateAppointmentStatusRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo    repository.Appointment
	clients clientRepository.Client
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Appointment, clients clientRepository.Client, cfg *config.Config, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo:    repo,
		clients: clients,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.ClientID != nil {
		if err = s.snapshotClient(ctx, &req); err != nil {
			return err
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

// snapshotClient copies contact fields from a saved client into the
// request. Caller-supplied values win; only empty fields are filled. The
// appointment keeps the copy even if the client is deleted later.
func (s *serviceImpl) snapshotClient(ctx context.Context, req *dto.CreateAppointmentRequest) error {
	cli, err := s.clients.Get(ctx, shared.FilterByID(*req.ClientID, clientModel.FieldID))
	if err != nil {
		log.Error().Err(err).Int64("client_id", *req.ClientID).Msg("failed to load client for snapshot")

		return fmt.Errorf("failed to load client for snapshot: %w", err)
	}

	if cli.ID == 0 {
		log.Warn().Int64("client_id", *req.ClientID).Msg("snapshot client not found, keeping submitted fields")

		return nil
	}

	if req.Address == "" {
		req.Address = cli.Address
	}

	if req.Zone == "" {
		req.Zone = cli.Zone
	}

	if req.Phone == "" {
		req.Phone = cli.Phone
	}

	if req.Notes == "" {
		req.Notes = cli.Notes
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListAppointmentsRequest) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.SortByDateTime(), req.Filter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// UpdateStatus sets the status unconditionally. An unknown id affects zero
// rows and is deliberately not an error; callers pick ids from a listing
// they just rendered.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateAppointmentStatusRequest) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()

	updated := map[string]any{model.FieldStatus: req.Status}

	if err := s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update appointment status")

		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	return nil
}

// Delete removes the appointment if present. Deleting an unknown id is a
// no-op, mirroring UpdateStatus.
func (s *serviceImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete appointment")

		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	return nil
}
