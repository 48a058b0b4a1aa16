package service

import (
	"context"
	"fmt"
	"time"
	"xterminio/config"
	"xterminio/infras/otel"
	"xterminio/internal/domains/client/model"
	"xterminio/internal/domains/client/model/dto"
	"xterminio/internal/domains/client/repository"
	"xterminio/shared"
	"xterminio/shared/constant"
	gDto "xterminio/shared/dto"
	"xterminio/shared/failure"

	"github.com/rs/zerolog/log"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) error
	GetAll(ctx context.Context) (dto.GetClientsResponse, error)
	Get(ctx context.Context, id int64) (dto.ClientResponse, error)
	Delete(ctx context.Context, id int64) error
	MonthlyDue(ctx context.Context, today time.Time) (dto.GetClientsResponse, error)
}

type serviceImpl struct {
	repo repository.Client
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Client, cfg *config.Config, otel otel.Otel) Client {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Duplicate names are allowed; the directory has no uniqueness rule.
	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.SortByBusinessName(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()

	cli, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if cli.ID == 0 {
		return res, failure.NotFound("client not found") // nolint:wrapcheck
	}

	res.FromModel(cli)

	return res, nil
}

// Delete removes the directory entry only. Appointments keep the contact
// snapshot they took at creation; nothing cascades.
func (s *serviceImpl) Delete(ctx context.Context, id int64) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete client")

		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}

// MonthlyDue returns the monthly clients whose reminder day equals the
// day-of-month of the given reference date. The date is an explicit
// parameter so the computation never reads the system clock itself.
func (s *serviceImpl) MonthlyDue(ctx context.Context, today time.Time) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthlyDue")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.SortByBusinessName(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	due := []model.Client{}
	for _, cli := range models {
		if cli.DueOn(today.Day()) {
			due = append(due, cli)
		}
	}

	res.FromModels(due)

	return res, nil
}
