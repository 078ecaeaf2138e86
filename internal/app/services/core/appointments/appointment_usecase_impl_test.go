package appointments

import (
	"context"
	"errors"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, practitionerID, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ExistsActiveSlot(ctx context.Context, practitionerID, date, timeSlot string) (bool, error) {
	args := m.Called(ctx, practitionerID, date, timeSlot)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ConsumeFreeTrial(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ConsumeSessionCredit(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) RefundSessionCredit(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) ApplySubscription(ctx context.Context, userID, plan string, sessions int, expiry time.Time, phoneNumber string) error {
	args := m.Called(ctx, userID, plan, sessions, expiry, phoneNumber)
	return args.Error(0)
}

type MockPractitionerRepository struct {
	mock.Mock
}

func (m *MockPractitionerRepository) FindAll(ctx context.Context) ([]models.Practitioner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Practitioner), args.Error(1)
}

func (m *MockPractitionerRepository) FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	args := m.Called(ctx, practitionerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Practitioner), args.Error(1)
}

func (m *MockPractitionerRepository) FindBySpecialty(ctx context.Context, specialty string) ([]models.Practitioner, error) {
	args := m.Called(ctx, specialty)
	return args.Get(0).([]models.Practitioner), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotificationQueue struct {
	mock.Mock
}

func (m *MockNotificationQueue) Publish(ctx context.Context, message *models.NotificationMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type usecaseMocks struct {
	appointments  *MockAppointmentRepository
	users         *MockUserRepository
	practitioners *MockPractitionerRepository
	locker        *MockLockerService
	queue         *MockNotificationQueue
}

func newTestAppointmentUsecase() (*appointmentUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		appointments:  new(MockAppointmentRepository),
		users:         new(MockUserRepository),
		practitioners: new(MockPractitionerRepository),
		locker:        new(MockLockerService),
		queue:         new(MockNotificationQueue),
	}
	uc := &appointmentUsecase{
		AppointmentRepository:  mocks.appointments,
		UserRepository:         mocks.users,
		PractitionerRepository: mocks.practitioners,
		LockerService:          mocks.locker,
		NotificationQueue:      mocks.queue,
		Log:                    zap.NewNop(),
		SlotLockTTL:            10 * time.Second,
		Location:               time.UTC,
	}
	return uc, mocks
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		t.Fatalf("expected CustomError, got %v", err)
	}
	return customErr.StatusCode
}

func trialUser() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Email: "a@b.c", FullName: "A"}
}

func subscribedUser(credits int) *models.User {
	expiry := time.Now().Add(24 * time.Hour)
	return &models.User{
		ID:                 primitive.NewObjectID(),
		Email:              "a@b.c",
		HasUsedFreeTrial:   true,
		SubscriptionPlan:   constvars.SubscriptionPlanStandard,
		RemainingSessions:  credits,
		SubscriptionExpiry: &expiry,
	}
}

func mondayPractitioner() *models.Practitioner {
	return &models.Practitioner{
		ID:           primitive.NewObjectID(),
		FirstName:    "Dana",
		LastName:     "Reed",
		WorkingHours: map[string]string{"monday": "09:00-17:00"},
	}
}

func sessionFor(user *models.User) *models.Session {
	return &models.Session{SessionID: "sid", UserID: user.ID.Hex()}
}

// 2026-09-07 is a Monday.
const bookableDate = "2026-09-07"

func bookingRequest(practitionerID string) *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		PractitionerID: practitionerID,
		Date:           bookableDate,
		Time:           "10:00",
	}
}

func TestCreateAppointment_NoCredits(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := subscribedUser(0)
	practitioner := mondayPractitioner()
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)

	_, err := uc.CreateAppointment(context.Background(), sessionFor(user), bookingRequest(practitioner.ID.Hex()))
	assert.Error(t, err)
	assert.Equal(t, http.StatusPaymentRequired, statusCodeOf(t, err))
	mocks.locker.AssertNotCalled(t, "TryLock")
}

func TestCreateAppointment_SlotLockContention(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := trialUser()
	practitioner := mondayPractitioner()
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

	_, err := uc.CreateAppointment(context.Background(), sessionFor(user), bookingRequest(practitioner.ID.Hex()))
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusCodeOf(t, err))
}

func TestCreateAppointment_SlotAlreadyTaken(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := trialUser()
	practitioner := mondayPractitioner()
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	mocks.appointments.On("ExistsActiveSlot", mock.Anything, practitioner.ID.Hex(), bookableDate, "10:00").Return(true, nil)

	_, err := uc.CreateAppointment(context.Background(), sessionFor(user), bookingRequest(practitioner.ID.Hex()))
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusCodeOf(t, err))
	mocks.locker.AssertCalled(t, "Unlock", mock.Anything, mock.Anything, "lock-value")
}

func TestCreateAppointment_OutsideWorkingHours(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := trialUser()
	practitioner := &models.Practitioner{
		ID:           primitive.NewObjectID(),
		WorkingHours: map[string]string{"monday": constvars.WorkingHoursUnavailable},
	}
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	mocks.appointments.On("ExistsActiveSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	_, err := uc.CreateAppointment(context.Background(), sessionFor(user), bookingRequest(practitioner.ID.Hex()))
	assert.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, statusCodeOf(t, err))
}

func TestCreateAppointment_FreeTrialBooking(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := trialUser()
	practitioner := mondayPractitioner()
	created := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: practitioner.ID,
		Date:           bookableDate,
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}

	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	mocks.appointments.On("ExistsActiveSlot", mock.Anything, practitioner.ID.Hex(), bookableDate, "10:00").Return(false, nil)
	mocks.appointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(created, nil)
	mocks.users.On("ConsumeFreeTrial", mock.Anything, user.ID.Hex()).Return(true, nil)
	mocks.queue.On("Publish", mock.Anything, mock.AnythingOfType("*models.NotificationMessage")).Return(nil)

	response, err := uc.CreateAppointment(context.Background(), sessionFor(user), bookingRequest(practitioner.ID.Hex()))
	assert.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusPlanned, response.Status)
	assert.Equal(t, "Dana Reed", response.PractitionerName)
	mocks.users.AssertNotCalled(t, "ConsumeSessionCredit")
	mocks.queue.AssertCalled(t, "Publish", mock.Anything, mock.AnythingOfType("*models.NotificationMessage"))
}

func TestCreateAppointment_CreditRaceRollsBackAppointment(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := subscribedUser(1)
	practitioner := mondayPractitioner()
	created := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: practitioner.ID,
		Date:           bookableDate,
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}

	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
	mocks.locker.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
	mocks.appointments.On("ExistsActiveSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	mocks.appointments.On("Create", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return(created, nil)
	// A concurrent booking spent the last credit between CanBook and here.
	mocks.users.On("ConsumeSessionCredit", mock.Anything, user.ID.Hex()).Return(false, nil)
	mocks.appointments.On("Delete", mock.Anything, created.ID.Hex()).Return(nil)

	_, err := uc.CreateAppointment(context.Background(), sessionFor(user), bookingRequest(practitioner.ID.Hex()))
	assert.Error(t, err)
	assert.Equal(t, http.StatusPaymentRequired, statusCodeOf(t, err))
	mocks.appointments.AssertCalled(t, "Delete", mock.Anything, created.ID.Hex())
	mocks.queue.AssertNotCalled(t, "Publish")
}

func TestCancelAppointment_NotOwner(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		PractitionerID: primitive.NewObjectID(),
		Status:         constvars.AppointmentStatusPlanned,
	}
	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)

	session := &models.Session{SessionID: "sid", UserID: primitive.NewObjectID().Hex()}
	_, err := uc.CancelAppointment(context.Background(), session, appointment.ID.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusCodeOf(t, err))
}

func TestCancelAppointment_AlreadyCancelled(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	userID := primitive.NewObjectID()
	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         userID,
		PractitionerID: primitive.NewObjectID(),
		Status:         constvars.AppointmentStatusCancelled,
	}
	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)

	session := &models.Session{SessionID: "sid", UserID: userID.Hex()}
	_, err := uc.CancelAppointment(context.Background(), session, appointment.ID.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, statusCodeOf(t, err))
}

func TestCancelAppointment_RefundsSubscribedUser(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := subscribedUser(1)
	practitioner := mondayPractitioner()
	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: practitioner.ID,
		Date:           bookableDate,
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}

	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)
	mocks.appointments.On("UpdateStatus", mock.Anything, appointment.ID.Hex(), constvars.AppointmentStatusCancelled).Return(nil)
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.users.On("RefundSessionCredit", mock.Anything, user.ID.Hex()).Return(nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.queue.On("Publish", mock.Anything, mock.AnythingOfType("*models.NotificationMessage")).Return(nil)

	response, err := uc.CancelAppointment(context.Background(), sessionFor(user), appointment.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
	mocks.users.AssertCalled(t, "RefundSessionCredit", mock.Anything, user.ID.Hex())
}

func TestCancelAppointment_RetriesTransientRefundFailure(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := subscribedUser(1)
	practitioner := mondayPractitioner()
	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: practitioner.ID,
		Date:           bookableDate,
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}

	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)
	mocks.appointments.On("UpdateStatus", mock.Anything, appointment.ID.Hex(), constvars.AppointmentStatusCancelled).Return(nil)
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.users.On("RefundSessionCredit", mock.Anything, user.ID.Hex()).Return(errors.New("connection reset")).Once()
	mocks.users.On("RefundSessionCredit", mock.Anything, user.ID.Hex()).Return(nil).Once()
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.queue.On("Publish", mock.Anything, mock.AnythingOfType("*models.NotificationMessage")).Return(nil)

	response, err := uc.CancelAppointment(context.Background(), sessionFor(user), appointment.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCancelled, response.Status)
	mocks.users.AssertNumberOfCalls(t, "RefundSessionCredit", 2)
}

func TestCancelAppointment_NoRefundForTrialBooking(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	// Free trial spent, no subscription: the trial credit is not returned.
	user := &models.User{ID: primitive.NewObjectID(), HasUsedFreeTrial: true}
	practitioner := mondayPractitioner()
	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: practitioner.ID,
		Date:           bookableDate,
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}

	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)
	mocks.appointments.On("UpdateStatus", mock.Anything, appointment.ID.Hex(), constvars.AppointmentStatusCancelled).Return(nil)
	mocks.users.On("FindByID", mock.Anything, user.ID.Hex()).Return(user, nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)
	mocks.queue.On("Publish", mock.Anything, mock.AnythingOfType("*models.NotificationMessage")).Return(nil)

	_, err := uc.CancelAppointment(context.Background(), sessionFor(user), appointment.ID.Hex())
	assert.NoError(t, err)
	mocks.users.AssertNotCalled(t, "RefundSessionCredit")
}

func TestCompleteAppointment_OnlyAssignedPractitioner(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		PractitionerID: primitive.NewObjectID(),
		Status:         constvars.AppointmentStatusPlanned,
	}
	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)

	stranger := &models.Session{SessionID: "sid", UserID: primitive.NewObjectID().Hex()}
	_, err := uc.CompleteAppointment(context.Background(), stranger, appointment.ID.Hex())
	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, statusCodeOf(t, err))
}

func TestCompleteAppointment_Success(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	practitioner := mondayPractitioner()
	appointment := &models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         primitive.NewObjectID(),
		PractitionerID: practitioner.ID,
		Status:         constvars.AppointmentStatusPlanned,
	}
	mocks.appointments.On("FindByID", mock.Anything, appointment.ID.Hex()).Return(appointment, nil)
	mocks.appointments.On("UpdateStatus", mock.Anything, appointment.ID.Hex(), constvars.AppointmentStatusCompleted).Return(nil)
	mocks.practitioners.On("FindByID", mock.Anything, practitioner.ID.Hex()).Return(practitioner, nil)

	session := &models.Session{SessionID: "sid", UserID: practitioner.ID.Hex()}
	response, err := uc.CompleteAppointment(context.Background(), session, appointment.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, constvars.AppointmentStatusCompleted, response.Status)
}

func TestGetAppointments_AutoCompletesPastPlanned(t *testing.T) {
	uc, mocks := newTestAppointmentUsecase()

	user := trialUser()
	past := models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: primitive.NewObjectID(),
		Date:           "2020-01-06",
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}
	upcoming := models.Appointment{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		PractitionerID: past.PractitionerID,
		Date:           time.Now().AddDate(1, 0, 0).Format(constvars.DateLayout),
		Time:           "10:00",
		Status:         constvars.AppointmentStatusPlanned,
	}

	mocks.appointments.On("FindByUser", mock.Anything, user.ID.Hex()).Return([]models.Appointment{past, upcoming}, nil)
	mocks.appointments.On("UpdateStatus", mock.Anything, past.ID.Hex(), constvars.AppointmentStatusCompleted).Return(nil)
	mocks.practitioners.On("FindByID", mock.Anything, past.PractitionerID.Hex()).Return(mondayPractitioner(), nil)

	result, err := uc.GetAppointments(context.Background(), sessionFor(user), "")
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	mocks.appointments.AssertCalled(t, "UpdateStatus", mock.Anything, past.ID.Hex(), constvars.AppointmentStatusCompleted)

	upcomingOnly, err := uc.GetAppointments(context.Background(), sessionFor(user), constvars.AppointmentScopeUpcoming)
	assert.NoError(t, err)
	assert.Len(t, upcomingOnly, 1)
	assert.Equal(t, upcoming.ID.Hex(), upcomingOnly[0].ID)

	pastOnly, err := uc.GetAppointments(context.Background(), sessionFor(user), constvars.AppointmentScopePast)
	assert.NoError(t, err)
	assert.Len(t, pastOnly, 1)
	assert.Equal(t, past.ID.Hex(), pastOnly[0].ID)
}
