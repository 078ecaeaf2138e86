package matching

import (
	"context"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/app/services/core/intake"
	"mindmatch-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data map[string]string
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) error {
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
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

func storeProgress(repo *fakeRedisRepository, intakeKey string, progress *models.IntakeProgress) {
	raw, _ := json.Marshal(progress)
	repo.data[constvars.RedisIntakeProgressKeyPrefix+intakeKey] = string(raw)
}

func newTestMatchingUsecase(repo *fakeRedisRepository, practitionerRepo *MockPractitionerRepository) *matchingUsecase {
	return &matchingUsecase{
		PractitionerRepository: practitionerRepo,
		RedisRepository:        repo,
		StorageService:         nil,
		Log:                    zap.NewNop(),
		PresignExpiry:          time.Hour,
	}
}

func ratedPractitioner(rating *float64, specialties ...string) models.Practitioner {
	return models.Practitioner{
		ID:            primitive.NewObjectID(),
		FirstName:     "A",
		LastName:      "B",
		Specialties:   specialties,
		AverageRating: rating,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestGetResults_NoSupportTypeYieldsEmptyResults(t *testing.T) {
	redisRepo := &fakeRedisRepository{data: make(map[string]string)}
	practitionerRepo := new(MockPractitionerRepository)
	uc := newTestMatchingUsecase(redisRepo, practitionerRepo)

	storeProgress(redisRepo, "user:1", models.NewIntakeProgress())

	response, err := uc.GetResults(context.Background(), "user:1")
	assert.NoError(t, err)
	assert.Nil(t, response.Recommended)
	assert.Empty(t, response.Alternates)
	practitionerRepo.AssertNotCalled(t, "FindBySpecialty")
}

func TestGetResults_RanksByRatingWithUnratedLast(t *testing.T) {
	redisRepo := &fakeRedisRepository{data: make(map[string]string)}
	practitionerRepo := new(MockPractitionerRepository)
	uc := newTestMatchingUsecase(redisRepo, practitionerRepo)

	progress := models.NewIntakeProgress()
	progress.Answers[intake.SupportTypeStep] = models.SingleAnswer(intake.SupportTypeIndividual)
	progress.Answers[7] = models.MultiAnswer([]string{"Negative thoughts"})
	storeProgress(redisRepo, "user:1", progress)

	best := ratedPractitioner(floatPtr(4.9), "Negative thoughts")
	middle := ratedPractitioner(floatPtr(3.2), intake.SupportTypeIndividual)
	unrated := ratedPractitioner(nil, "Negative thoughts")

	practitionerRepo.On("FindBySpecialty", mock.Anything, "Negative thoughts").
		Return([]models.Practitioner{unrated, best}, nil)
	practitionerRepo.On("FindBySpecialty", mock.Anything, intake.SupportTypeIndividual).
		Return([]models.Practitioner{middle}, nil)

	response, err := uc.GetResults(context.Background(), "user:1")
	assert.NoError(t, err)
	assert.NotNil(t, response.Recommended)
	assert.Equal(t, best.ID.Hex(), response.Recommended.ID)
	assert.Len(t, response.Alternates, 2)
	assert.Equal(t, middle.ID.Hex(), response.Alternates[0].ID)
	assert.Equal(t, unrated.ID.Hex(), response.Alternates[1].ID, "unrated practitioners sort last")
}

func TestGetResults_DeduplicatesAcrossTags(t *testing.T) {
	redisRepo := &fakeRedisRepository{data: make(map[string]string)}
	practitionerRepo := new(MockPractitionerRepository)
	uc := newTestMatchingUsecase(redisRepo, practitionerRepo)

	progress := models.NewIntakeProgress()
	progress.Answers[intake.SupportTypeStep] = models.SingleAnswer(intake.SupportTypeCouples)
	progress.Answers[12] = models.MultiAnswer([]string{"Communication problems"})
	storeProgress(redisRepo, "user:1", progress)

	both := ratedPractitioner(floatPtr(4.0), "Communication problems", intake.SupportTypeCouples)

	practitionerRepo.On("FindBySpecialty", mock.Anything, "Communication problems").
		Return([]models.Practitioner{both}, nil)
	practitionerRepo.On("FindBySpecialty", mock.Anything, intake.SupportTypeCouples).
		Return([]models.Practitioner{both}, nil)

	response, err := uc.GetResults(context.Background(), "user:1")
	assert.NoError(t, err)
	assert.NotNil(t, response.Recommended)
	assert.Equal(t, both.ID.Hex(), response.Recommended.ID)
	assert.Empty(t, response.Alternates, "the same practitioner must not appear twice")
}

func TestDeriveTags(t *testing.T) {
	progress := models.NewIntakeProgress()
	assert.Nil(t, deriveTags(progress))

	progress.Answers[intake.SupportTypeStep] = models.SingleAnswer(intake.SupportTypeChild)
	progress.Answers[15] = models.MultiAnswer([]string{"Emotion regulation", "Boundary violations"})

	tags := deriveTags(progress)
	assert.Equal(t, []string{"Emotion regulation", "Boundary violations", intake.SupportTypeChild}, tags)
}
