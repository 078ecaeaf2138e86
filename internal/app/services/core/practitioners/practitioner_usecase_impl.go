package practitioners

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/responses"
	"mindmatch-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	practitionerUsecaseInstance contracts.PractitionerUsecase
	oncePractitionerUsecase     sync.Once
)

type practitionerUsecase struct {
	PractitionerRepository contracts.PractitionerRepository
	AppointmentRepository  contracts.AppointmentRepository
	StorageService         contracts.StorageService
	Log                    *zap.Logger
	PresignExpiry          time.Duration
	AvailabilityOffset     time.Duration
	Location               *time.Location
}

func NewPractitionerUsecase(
	practitionerRepository contracts.PractitionerRepository,
	appointmentRepository contracts.AppointmentRepository,
	storageService contracts.StorageService,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.PractitionerUsecase {
	oncePractitionerUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			location = time.Local
		}
		practitionerUsecaseInstance = &practitionerUsecase{
			PractitionerRepository: practitionerRepository,
			AppointmentRepository:  appointmentRepository,
			StorageService:         storageService,
			Log:                    logger,
			PresignExpiry:          time.Duration(internalConfig.App.MinioPresignedURLExpiryInHours) * time.Hour,
			AvailabilityOffset:     time.Duration(internalConfig.App.AvailabilityOffsetHours) * time.Hour,
			Location:               location,
		}
	})
	return practitionerUsecaseInstance
}

func (uc *practitionerUsecase) GetAll(ctx context.Context) ([]responses.PractitionerResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.GetAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	practitioners, err := uc.PractitionerRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("practitionerUsecase.GetAll error finding practitioners",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.PractitionerResponse, 0, len(practitioners))
	for i := range practitioners {
		result = append(result, BuildResponse(ctx, &practitioners[i], uc.StorageService, uc.PresignExpiry))
	}
	return result, nil
}

func (uc *practitionerUsecase) GetByID(ctx context.Context, practitionerID string) (*responses.PractitionerResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.GetByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
	)

	practitioner, err := uc.PractitionerRepository.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotExist(nil)
	}

	response := BuildResponse(ctx, practitioner, uc.StorageService, uc.PresignExpiry)
	return &response, nil
}

func (uc *practitionerUsecase) GetAvailability(ctx context.Context, practitionerID, date string) (*responses.AvailabilityResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingDateKey, date),
	)

	requestedDate, err := time.ParseInLocation(constvars.DateLayout, date, uc.Location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	practitioner, err := uc.PractitionerRepository.FindByID(ctx, practitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotExist(nil)
	}

	window := practitioner.WorkingHours[weekdayKey(requestedDate)]

	appointments, err := uc.AppointmentRepository.FindActiveByPractitionerAndDate(ctx, practitionerID, date)
	if err != nil {
		uc.Log.Error("practitionerUsecase.GetAvailability error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	booked := make(map[string]bool, len(appointments))
	for _, appointment := range appointments {
		booked[appointment.Time] = true
	}

	slots := buildAvailableSlots(window, booked, requestedDate, time.Now().In(uc.Location), uc.AvailabilityOffset)

	uc.Log.Info("practitionerUsecase.GetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.Int(constvars.LoggingSlotCountKey, len(slots)),
	)
	return &responses.AvailabilityResponse{
		PractitionerID: practitionerID,
		Date:           date,
		Slots:          slots,
	}, nil
}
