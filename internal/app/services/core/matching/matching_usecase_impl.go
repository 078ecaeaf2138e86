package matching

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/app/services/core/intake"
	"mindmatch-service/internal/app/services/core/practitioners"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/responses"
	"mindmatch-service/internal/pkg/exceptions"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	matchingUsecaseInstance contracts.MatchingUsecase
	onceMatchingUsecase     sync.Once
)

type matchingUsecase struct {
	PractitionerRepository contracts.PractitionerRepository
	RedisRepository        contracts.RedisRepository
	StorageService         contracts.StorageService
	Log                    *zap.Logger
	PresignExpiry          time.Duration
}

func NewMatchingUsecase(
	practitionerRepository contracts.PractitionerRepository,
	redisRepository contracts.RedisRepository,
	storageService contracts.StorageService,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.MatchingUsecase {
	onceMatchingUsecase.Do(func() {
		matchingUsecaseInstance = &matchingUsecase{
			PractitionerRepository: practitionerRepository,
			RedisRepository:        redisRepository,
			StorageService:         storageService,
			Log:                    logger,
			PresignExpiry:          time.Duration(internalConfig.App.MinioPresignedURLExpiryInHours) * time.Hour,
		}
	})
	return matchingUsecaseInstance
}

func (uc *matchingUsecase) GetResults(ctx context.Context, intakeKey string) (*responses.MatchingResultsResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("matchingUsecase.GetResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey),
	)

	progress, err := uc.loadProgress(ctx, intakeKey)
	if err != nil {
		return nil, err
	}

	tags := deriveTags(progress)
	if len(tags) == 0 {
		uc.Log.Info("matchingUsecase.GetResults no tags derived from answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return &responses.MatchingResultsResponse{Alternates: []responses.PractitionerResponse{}}, nil
	}

	// Union across tags, deduplicated by practitioner ID.
	seen := make(map[string]bool)
	var matched []models.Practitioner
	for _, tag := range tags {
		found, err := uc.PractitionerRepository.FindBySpecialty(ctx, tag)
		if err != nil {
			uc.Log.Error("matchingUsecase.GetResults error finding practitioners by specialty",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSpecialtyKey, tag),
				zap.Error(err),
			)
			return nil, err
		}
		for _, practitioner := range found {
			id := practitioner.ID.Hex()
			if !seen[id] {
				seen[id] = true
				matched = append(matched, practitioner)
			}
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].RatingOrDefault() > matched[j].RatingOrDefault()
	})

	response := &responses.MatchingResultsResponse{Alternates: []responses.PractitionerResponse{}}
	for i := range matched {
		built := practitioners.BuildResponse(ctx, &matched[i], uc.StorageService, uc.PresignExpiry)
		if i == 0 {
			response.Recommended = &built
		} else {
			response.Alternates = append(response.Alternates, built)
		}
	}

	uc.Log.Info("matchingUsecase.GetResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(matched)),
	)
	return response, nil
}

// deriveTags builds the specialty tags: the chosen support type plus the
// values of that branch's multi-select step.
func deriveTags(progress *models.IntakeProgress) []string {
	supportAnswer, ok := progress.Answers[intake.SupportTypeStep]
	if !ok || supportAnswer.Single == "" {
		return nil
	}

	var tags []string
	if multiStep, ok := intake.BranchMultiStep(supportAnswer.Single); ok {
		if areas, ok := progress.Answers[multiStep]; ok {
			tags = append(tags, areas.Multi...)
		}
	}
	tags = append(tags, supportAnswer.Single)
	return tags
}

func (uc *matchingUsecase) loadProgress(ctx context.Context, intakeKey string) (*models.IntakeProgress, error) {
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
	return &progress, nil
}
