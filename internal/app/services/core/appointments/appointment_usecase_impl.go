package appointments

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	UserRepository         contracts.UserRepository
	PractitionerRepository contracts.PractitionerRepository
	LockerService          contracts.LockerService
	NotificationQueue      contracts.NotificationQueueService
	Log                    *zap.Logger
	SlotLockTTL            time.Duration
	Location               *time.Location
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	practitionerRepository contracts.PractitionerRepository,
	lockerService contracts.LockerService,
	notificationQueue contracts.NotificationQueueService,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			location = time.Local
		}
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			UserRepository:         userRepository,
			PractitionerRepository: practitionerRepository,
			LockerService:          lockerService,
			NotificationQueue:      notificationQueue,
			Log:                    logger,
			SlotLockTTL:            time.Duration(internalConfig.App.SlotLockTTLInSeconds) * time.Second,
			Location:               location,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	practitioner, err := uc.PractitionerRepository.FindByID(ctx, request.PractitionerID)
	if err != nil {
		return nil, err
	}
	if practitioner == nil {
		return nil, exceptions.ErrPractitionerNotExist(nil)
	}

	now := time.Now().In(uc.Location)
	if !user.CanBook(now) {
		uc.Log.Info("appointmentUsecase.CreateAppointment user has no booking credit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
		)
		return nil, exceptions.ErrNoSessionCredits(nil)
	}

	// The slot lock serializes racing bookings of the same slot; the
	// partial unique index on the collection is the backstop.
	lockKey := utils.BuildSlotLockKey(request.PractitionerID, request.Date, request.Time)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.SlotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotConflict(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("appointmentUsecase.CreateAppointment error releasing slot lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	taken, err := uc.AppointmentRepository.ExistsActiveSlot(ctx, request.PractitionerID, request.Date, request.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, exceptions.ErrSlotConflict(nil)
	}

	if err := uc.ensureWithinWorkingHours(practitioner, request.Date, request.Time); err != nil {
		return nil, err
	}

	practitionerID, err := primitive.ObjectIDFromHex(request.PractitionerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	appointment := &models.Appointment{
		UserID:         user.ID,
		PractitionerID: practitionerID,
		Date:           request.Date,
		Time:           request.Time,
		Status:         constvars.AppointmentStatusPlanned,
	}
	appointment, err = uc.AppointmentRepository.Create(ctx, appointment)
	if err != nil {
		return nil, err
	}

	if err := uc.consumeCredit(ctx, user, appointment); err != nil {
		return nil, err
	}

	uc.publishNotification(ctx, constvars.NotificationTypeBookingConfirmed, user, practitioner, appointment)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
	)
	return buildAppointmentResponse(appointment, practitioner.FullName()), nil
}

// consumeCredit spends the free trial first, then a subscription credit.
// Both paths are conditional updates, so two racing bookings cannot spend
// the same credit twice. When neither succeeds the freshly created
// appointment is rolled back.
func (uc *appointmentUsecase) consumeCredit(ctx context.Context, user *models.User, appointment *models.Appointment) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if !user.HasUsedFreeTrial {
		consumed, err := uc.UserRepository.ConsumeFreeTrial(ctx, user.ID.Hex())
		if err != nil {
			uc.compensateAppointment(ctx, appointment)
			return err
		}
		if consumed {
			return nil
		}
	}

	consumed, err := uc.UserRepository.ConsumeSessionCredit(ctx, user.ID.Hex())
	if err != nil {
		uc.compensateAppointment(ctx, appointment)
		return err
	}
	if !consumed {
		uc.Log.Info("appointmentUsecase.consumeCredit no credit left after re-check",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
		)
		uc.compensateAppointment(ctx, appointment)
		return exceptions.ErrNoSessionCredits(nil)
	}
	return nil
}

func (uc *appointmentUsecase) compensateAppointment(ctx context.Context, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if err := uc.AppointmentRepository.Delete(ctx, appointment.ID.Hex()); err != nil {
		uc.Log.Error("appointmentUsecase.compensateAppointment error deleting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) ensureWithinWorkingHours(practitioner *models.Practitioner, date, timeSlot string) error {
	requestedDate, err := utils.ParseDate(date)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}
	requestedTime, err := utils.ParseTimeOfDay(timeSlot)
	if err != nil {
		return exceptions.ErrCannotParseTime(err)
	}

	weekday := strings.ToLower(requestedDate.Weekday().String())
	window := practitioner.WorkingHours[weekday]
	start, end, ok := parseWindow(window)
	if !ok {
		return exceptions.ErrOutsideWorkingHours(nil)
	}

	// Bookable slots are whole hours aligned on the window start.
	if requestedTime.Minute() != start.Minute() {
		return exceptions.ErrOutsideWorkingHours(nil)
	}
	if requestedTime.Before(start) || !requestedTime.Before(end) {
		return exceptions.ErrOutsideWorkingHours(nil)
	}
	return nil
}

func parseWindow(window string) (start, end time.Time, ok bool) {
	window = strings.TrimSpace(window)
	if window == "" || strings.EqualFold(window, constvars.WorkingHoursUnavailable) {
		return time.Time{}, time.Time{}, false
	}
	parts := strings.SplitN(window, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	start, err := utils.ParseTimeOfDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = utils.ParseTimeOfDay(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, end.After(start)
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, session *models.Session, scope string) ([]responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingQueryKey, scope),
	)

	appointments, err := uc.AppointmentRepository.FindByUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.Location)
	result := make([]responses.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		appointment := &appointments[i]

		// Repair on read: planned appointments whose slot has passed
		// become completed.
		if appointment.Status == constvars.AppointmentStatusPlanned && appointment.StartsBefore(now, uc.Location) {
			if err := uc.AppointmentRepository.UpdateStatus(ctx, appointment.ID.Hex(), constvars.AppointmentStatusCompleted); err != nil {
				uc.Log.Error("appointmentUsecase.GetAppointments error auto-completing appointment",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
					zap.Error(err),
				)
			} else {
				appointment.Status = constvars.AppointmentStatusCompleted
			}
		}

		switch scope {
		case constvars.AppointmentScopeUpcoming:
			if appointment.Status != constvars.AppointmentStatusPlanned {
				continue
			}
		case constvars.AppointmentScopePast:
			if appointment.Status == constvars.AppointmentStatusPlanned {
				continue
			}
		}

		name := uc.lookupPractitionerName(ctx, appointment.PractitionerID.Hex())
		result = append(result, *buildAppointmentResponse(appointment, name))
	}

	uc.Log.Info("appointmentUsecase.GetAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(result)),
	)
	return result, nil
}

func (uc *appointmentUsecase) lookupPractitionerName(ctx context.Context, practitionerID string) string {
	practitioner, err := uc.PractitionerRepository.FindByID(ctx, practitionerID)
	if err != nil || practitioner == nil {
		return ""
	}
	return practitioner.FullName()
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.UserID.Hex() != session.UserID {
		return nil, exceptions.ErrNotAppointmentOwner(nil)
	}
	if appointment.Status != constvars.AppointmentStatusPlanned {
		return nil, exceptions.ErrAppointmentNotCancellable(nil, appointment.Status)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled); err != nil {
		return nil, err
	}
	appointment.Status = constvars.AppointmentStatusCancelled

	uc.refundCreditIfEligible(ctx, session.UserID)

	practitioner, _ := uc.PractitionerRepository.FindByID(ctx, appointment.PractitionerID.Hex())
	name := ""
	if practitioner != nil {
		name = practitioner.FullName()
	}
	user, _ := uc.UserRepository.FindByID(ctx, session.UserID)
	if user != nil && practitioner != nil {
		uc.publishNotification(ctx, constvars.NotificationTypeBookingCancelled, user, practitioner, appointment)
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment, name), nil
}

// refundRetryAttempts bounds the refund retries after a cancellation has
// already been committed.
const refundRetryAttempts = 3

// refundCreditIfEligible returns one session credit, but only for users
// who already spent their free trial and still hold an active
// subscription. The cancellation is already committed at this point, so
// transient refund failures are retried; a refund that keeps failing is
// logged, not surfaced.
func (uc *appointmentUsecase) refundCreditIfEligible(ctx context.Context, userID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil || user == nil {
		uc.Log.Error("appointmentUsecase.refundCreditIfEligible error loading user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return
	}

	if !user.HasUsedFreeTrial || !user.HasActiveSubscription(time.Now().In(uc.Location)) {
		return
	}

	var refundErr error
	for attempt := 1; attempt <= refundRetryAttempts; attempt++ {
		if refundErr = uc.UserRepository.RefundSessionCredit(ctx, userID); refundErr == nil {
			return
		}
		uc.Log.Warn("appointmentUsecase.refundCreditIfEligible error refunding credit, retrying",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Error(refundErr),
		)
	}
	uc.Log.Error("appointmentUsecase.refundCreditIfEligible refund failed after retries",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.Error(refundErr),
	)
}

func (uc *appointmentUsecase) CompleteAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CompleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.PractitionerID.Hex() != session.UserID {
		return nil, exceptions.ErrNotAppointmentPractitioner(nil)
	}
	if appointment.Status != constvars.AppointmentStatusPlanned {
		return nil, exceptions.ErrAppointmentNotCompletable(nil, appointment.Status)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, constvars.AppointmentStatusCompleted); err != nil {
		return nil, err
	}
	appointment.Status = constvars.AppointmentStatusCompleted

	uc.Log.Info("appointmentUsecase.CompleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return buildAppointmentResponse(appointment, uc.lookupPractitionerName(ctx, appointment.PractitionerID.Hex())), nil
}

// publishNotification is fire-and-forget: queue failures are logged and
// never roll the booking state back.
func (uc *appointmentUsecase) publishNotification(ctx context.Context, notificationType string, user *models.User, practitioner *models.Practitioner, appointment *models.Appointment) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	message := &models.NotificationMessage{
		Type:             notificationType,
		UserID:           user.ID.Hex(),
		PractitionerID:   practitioner.ID.Hex(),
		AppointmentID:    appointment.ID.Hex(),
		AppointmentDate:  appointment.Date,
		AppointmentTime:  appointment.Time,
		PractitionerName: practitioner.FullName(),
		SentAt:           time.Now(),
	}
	if err := uc.NotificationQueue.Publish(ctx, message); err != nil {
		uc.Log.Error("appointmentUsecase.publishNotification error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
			zap.Error(err),
		)
	}
}

func buildAppointmentResponse(appointment *models.Appointment, practitionerName string) *responses.AppointmentResponse {
	return &responses.AppointmentResponse{
		ID:               appointment.ID.Hex(),
		PractitionerID:   appointment.PractitionerID.Hex(),
		PractitionerName: practitionerName,
		Date:             appointment.Date,
		Time:             appointment.Time,
		Status:           appointment.Status,
		CreatedAt:        appointment.CreatedAt,
	}
}
