package intake

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
	"mindmatch-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const resultsStepName = "results"

var (
	intakeUsecaseInstance contracts.IntakeUsecase
	onceIntakeUsecase     sync.Once
)

type intakeUsecase struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	ProgressTTL     time.Duration
}

func NewIntakeUsecase(
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.IntakeUsecase {
	onceIntakeUsecase.Do(func() {
		intakeUsecaseInstance = &intakeUsecase{
			RedisRepository: redisRepository,
			Log:             logger,
			ProgressTTL:     time.Duration(internalConfig.App.IntakeProgressTTLInHours) * time.Hour,
		}
	})
	return intakeUsecaseInstance
}

func (uc *intakeUsecase) SubmitStep(ctx context.Context, intakeKey string, authenticated bool, request *requests.SubmitIntakeStepRequest) (*responses.SubmitIntakeStepResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeUsecase.SubmitStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey),
		zap.Int(constvars.LoggingStepKey, request.Step),
	)

	if !IsValidStep(request.Step) {
		return nil, exceptions.ErrIntakeStepOutOfRange(nil, request.Step)
	}

	answer, err := validateAnswer(request.Step, request.FieldValue.Single, request.FieldValue.Multi, request.FieldValue.Number)
	if err != nil {
		uc.Log.Error("intakeUsecase.SubmitStep invalid answer",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStepKey, request.Step),
			zap.Error(err),
		)
		return nil, err
	}

	progress, err := uc.loadProgress(ctx, intakeKey)
	if err != nil {
		return nil, err
	}

	// History records each submitted step once, so repeated submits of
	// the same step do not stack up.
	if len(progress.History) == 0 || progress.History[len(progress.History)-1] != request.Step {
		progress.History = append(progress.History, request.Step)
	}

	if request.Step == SupportTypeStep {
		uc.clearStaleBranchAnswers(progress, answer.Single)
	}
	progress.Answers[request.Step] = answer

	next, ok := NextStep(request.Step, answer.Primary())
	if !ok {
		return nil, exceptions.ErrIntakeAnswerNotAllowed(nil, request.Step)
	}

	response := &responses.SubmitIntakeStepResponse{}
	if next == StepResults {
		response.NextStep = resultsStepName
		if !authenticated {
			// Guests keep their place in the questionnaire and pick the
			// results up after signing in.
			progress.PendingResults = true
			response.PendingResults = true
		} else {
			progress.PendingResults = false
		}
	} else {
		progress.CurrentStep = next
		progress.PendingResults = false
		response.NextStep = strconv.Itoa(next)
	}

	if err := uc.saveProgress(ctx, intakeKey, progress); err != nil {
		return nil, err
	}

	uc.Log.Info("intakeUsecase.SubmitStep succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStepKey, request.Step),
		zap.String(constvars.LoggingNextStepKey, response.NextStep),
	)
	return response, nil
}

func (uc *intakeUsecase) Back(ctx context.Context, intakeKey string) (*responses.IntakeProgressResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeUsecase.Back called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey),
	)

	progress, err := uc.loadProgress(ctx, intakeKey)
	if err != nil {
		return nil, err
	}

	// Going back never fails: with no history left the questionnaire
	// returns to the first step.
	if len(progress.History) > 0 {
		progress.CurrentStep = progress.History[len(progress.History)-1]
		progress.History = progress.History[:len(progress.History)-1]
	} else {
		progress.CurrentStep = 1
	}

	if err := uc.saveProgress(ctx, intakeKey, progress); err != nil {
		return nil, err
	}
	return buildProgressResponse(progress), nil
}

func (uc *intakeUsecase) Reset(ctx context.Context, intakeKey string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeUsecase.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey),
	)

	return uc.RedisRepository.Delete(ctx, constvars.RedisIntakeProgressKeyPrefix+intakeKey)
}

func (uc *intakeUsecase) GetProgress(ctx context.Context, intakeKey string) (*responses.IntakeProgressResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("intakeUsecase.GetProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey),
	)

	progress, err := uc.loadProgress(ctx, intakeKey)
	if err != nil {
		return nil, err
	}
	return buildProgressResponse(progress), nil
}

// clearStaleBranchAnswers drops the answers of every support-type branch
// other than the newly selected one, so a branch switch cannot leave
// contradictory answers behind.
func (uc *intakeUsecase) clearStaleBranchAnswers(progress *models.IntakeProgress, newSupportType string) {
	previous, hadPrevious := progress.Answers[SupportTypeStep]
	if hadPrevious && previous.Single == newSupportType {
		return
	}
	for branch, steps := range branchSteps {
		if branch == newSupportType {
			continue
		}
		for _, step := range steps {
			delete(progress.Answers, step)
		}
	}
}

func (uc *intakeUsecase) loadProgress(ctx context.Context, intakeKey string) (*models.IntakeProgress, error) {
	data, err := uc.RedisRepository.Get(ctx, constvars.RedisIntakeProgressKeyPrefix+intakeKey)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return models.NewIntakeProgress(), nil
	}

	var progress models.IntakeProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, exceptions.WrapWithError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevIntakeProgressDecode)
	}
	if progress.Answers == nil {
		progress.Answers = make(map[int]models.Answer)
	}
	if !IsValidStep(progress.CurrentStep) {
		progress.CurrentStep = 1
	}
	return &progress, nil
}

func (uc *intakeUsecase) saveProgress(ctx context.Context, intakeKey string, progress *models.IntakeProgress) error {
	return uc.RedisRepository.Set(ctx, constvars.RedisIntakeProgressKeyPrefix+intakeKey, progress, uc.ProgressTTL)
}

func buildProgressResponse(progress *models.IntakeProgress) *responses.IntakeProgressResponse {
	answers := make(map[int]interface{}, len(progress.Answers))
	for step, answer := range progress.Answers {
		answers[step] = answer
	}
	return &responses.IntakeProgressResponse{
		CurrentStep:    progress.CurrentStep,
		Answers:        answers,
		PendingResults: progress.PendingResults,
	}
}
