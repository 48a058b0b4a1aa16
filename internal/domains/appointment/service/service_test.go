package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"xterminio/config"
	"xterminio/infras/otel/mocks"
	appointmentMocks "xterminio/internal/domains/appointment/mocks"
	"xterminio/internal/domains/appointment/model"
	"xterminio/internal/domains/appointment/model/dto"
	"xterminio/internal/domains/appointment/service"
	clientMocks "xterminio/internal/domains/client/mocks"
	clientModel "xterminio/internal/domains/client/model"
)

func int64Ptr(i int64) *int64 {
	return &i
}

func TestAppointmentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockClients := clientMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClients, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateAppointmentRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateAppointmentRequest{
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateAppointmentRequest{
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "saved client fills empty contact fields",
			req: dto.CreateAppointmentRequest{
				ClientID:   int64Ptr(7),
				ClientName: "Panadería La Espiga",
				Zone:       "Centro",
				Date:       "2026-09-01",
				Time:       "10:30",
			},
			setupMock: func() {
				mockClients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(clientModel.Client{
						ID:      7,
						Name:    "Juan Pérez",
						Address: "Av. Juárez 12",
						Zone:    "Norte",
						Phone:   "555-0101",
					}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, mod model.Appointment) error {
						// Only empty fields are filled from the snapshot.
						assert.Equal(t, "Av. Juárez 12", mod.Address)
						assert.Equal(t, "Centro", mod.Zone)
						assert.Equal(t, "555-0101", mod.Phone)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "missing snapshot client keeps submitted fields",
			req: dto.CreateAppointmentRequest{
				ClientID:   int64Ptr(99),
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30",
			},
			setupMock: func() {
				mockClients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(clientModel.Client{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "snapshot lookup error",
			req: dto.CreateAppointmentRequest{
				ClientID:   int64Ptr(7),
				ClientName: "Casa García",
				Date:       "2026-09-01",
				Time:       "10:30",
			},
			setupMock: func() {
				mockClients.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(clientModel.Client{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockClients := clientMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClients, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.ListAppointmentsRequest
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful listing",
			req:  dto.ListAppointmentsRequest{},
			setupMock: func() {
				appointments := []model.Appointment{
					{ID: 1, ClientName: "Casa García", Date: "2026-09-01", Time: "09:00", Status: model.StatusPendiente},
					{ID: 2, ClientName: "Panadería La Espiga", Date: "2026-09-01", Time: "11:00", Status: model.StatusCobrado},
				}

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(appointments, nil)
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "repository error",
			req:  dto.ListAppointmentsRequest{Status: model.StatusPendiente},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.List(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.Total)
			}
		})
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockClients := clientMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClients, cfg, mockOtel)

	tests := []struct {
		name      string
		id        int64
		req       dto.UpdateAppointmentStatusRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful status update",
			id:   1,
			req:  dto.UpdateAppointmentStatusRequest{Status: model.StatusRealizado},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown id is a no-op, not an error",
			id:   999,
			req:  dto.UpdateAppointmentStatusRequest{Status: model.StatusCobrado},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			id:   1,
			req:  dto.UpdateAppointmentStatusRequest{Status: model.StatusRealizado},
			setupMock: func() {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.UpdateStatus(context.Background(), tt.id, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := appointmentMocks.NewMockAppointment(ctrl)
	mockClients := clientMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockClients, cfg, mockOtel)

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown id is a no-op, not an error",
			id:   999,
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			id:   1,
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
