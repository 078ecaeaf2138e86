package intake

import (
	"context"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRedisRepository keeps values in memory the way the real repository
// stores them: marshaled to JSON strings.
type fakeRedisRepository struct {
	data map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: make(map[string]string)}
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
	if _, exists := f.data[key]; exists {
		return false, nil
	}
	return true, f.Set(ctx, key, value, exp)
}

func newTestIntakeUsecase(repo *fakeRedisRepository) *intakeUsecase {
	return &intakeUsecase{
		RedisRepository: repo,
		Log:             zap.NewNop(),
		ProgressTTL:     time.Hour,
	}
}

func singleStepRequest(step int, value string) *requests.SubmitIntakeStepRequest {
	return &requests.SubmitIntakeStepRequest{
		Step:       step,
		FieldValue: requests.FieldValue{Single: value, IsSet: true},
	}
}

func TestSubmitStep_AdvancesAndRecordsHistory(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)
	ctx := context.Background()

	response, err := uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(1, "Yes"))
	assert.NoError(t, err)
	assert.Equal(t, "2", response.NextStep)
	assert.False(t, response.PendingResults)

	progress, err := uc.GetProgress(ctx, "anon:abc")
	assert.NoError(t, err)
	assert.Equal(t, 2, progress.CurrentStep)
}

func TestSubmitStep_InvalidStepRejected(t *testing.T) {
	uc := newTestIntakeUsecase(newFakeRedisRepository())

	_, err := uc.SubmitStep(context.Background(), "anon:abc", false, singleStepRequest(42, "Yes"))
	assert.Error(t, err)
}

func TestSubmitStep_GuestGetsPendingResultsAtTerminal(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)
	ctx := context.Background()

	_, err := uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(6, SupportTypeIndividual))
	assert.NoError(t, err)

	response, err := uc.SubmitStep(ctx, "anon:abc", false, &requests.SubmitIntakeStepRequest{
		Step:       7,
		FieldValue: requests.FieldValue{Multi: []string{"Negative thoughts"}, IsSet: true},
	})
	assert.NoError(t, err)
	assert.Equal(t, "results", response.NextStep)
	assert.True(t, response.PendingResults)

	// The guest keeps their place until they sign in.
	progress, err := uc.GetProgress(ctx, "anon:abc")
	assert.NoError(t, err)
	assert.Equal(t, 7, progress.CurrentStep)
	assert.True(t, progress.PendingResults)
}

func TestSubmitStep_AuthenticatedTerminalHasNoPendingResults(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)
	ctx := context.Background()

	_, err := uc.SubmitStep(ctx, "user:1", true, singleStepRequest(6, SupportTypeIndividual))
	assert.NoError(t, err)

	response, err := uc.SubmitStep(ctx, "user:1", true, &requests.SubmitIntakeStepRequest{
		Step:       7,
		FieldValue: requests.FieldValue{Multi: []string{"Negative thoughts"}, IsSet: true},
	})
	assert.NoError(t, err)
	assert.Equal(t, "results", response.NextStep)
	assert.False(t, response.PendingResults)
}

func TestSubmitStep_RepeatedSubmitDoesNotStackHistory(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)
	ctx := context.Background()

	_, err := uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(1, "Yes"))
	assert.NoError(t, err)
	_, err = uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(1, "No"))
	assert.NoError(t, err)

	// One back pops the single history entry for step 1.
	progress, err := uc.Back(ctx, "anon:abc")
	assert.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStep)

	// A second back hits empty history and stays on step 1.
	progress, err = uc.Back(ctx, "anon:abc")
	assert.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStep)
}

func TestBack_EmptyHistoryReturnsToFirstStep(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)

	progress, err := uc.Back(context.Background(), "anon:fresh")
	assert.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStep)
}

func TestSubmitStep_BranchSwitchClearsOtherBranchAnswers(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)
	ctx := context.Background()

	_, err := uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(6, SupportTypeIndividual))
	assert.NoError(t, err)
	_, err = uc.SubmitStep(ctx, "anon:abc", false, &requests.SubmitIntakeStepRequest{
		Step:       7,
		FieldValue: requests.FieldValue{Multi: []string{"Negative thoughts"}, IsSet: true},
	})
	assert.NoError(t, err)

	// Switching to couples therapy must drop the individual branch answer.
	_, err = uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(6, SupportTypeCouples))
	assert.NoError(t, err)

	progress, err := uc.GetProgress(ctx, "anon:abc")
	assert.NoError(t, err)
	_, hasIndividualAnswer := progress.Answers[7]
	assert.False(t, hasIndividualAnswer)
	_, hasSupportType := progress.Answers[SupportTypeStep]
	assert.True(t, hasSupportType)
}

func TestReset_DropsStoredProgress(t *testing.T) {
	repo := newFakeRedisRepository()
	uc := newTestIntakeUsecase(repo)
	ctx := context.Background()

	_, err := uc.SubmitStep(ctx, "anon:abc", false, singleStepRequest(1, "Yes"))
	assert.NoError(t, err)

	err = uc.Reset(ctx, "anon:abc")
	assert.NoError(t, err)

	_, stored := repo.data[constvars.RedisIntakeProgressKeyPrefix+"anon:abc"]
	assert.False(t, stored)

	progress, err := uc.GetProgress(ctx, "anon:abc")
	assert.NoError(t, err)
	assert.Equal(t, 1, progress.CurrentStep)
	assert.Empty(t, progress.Answers)
}
