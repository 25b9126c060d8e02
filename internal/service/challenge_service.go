package service

import (
	"codefix_backend/internal/content"
	"codefix_backend/internal/repository"
	"codefix_backend/internal/util"
	"codefix_backend/internal/validator"
	"codefix_backend/pkg/logger"
	"codefix_backend/pkg/monitoring"
	"strconv"

	"go.uber.org/zap"
)

type ChallengeService struct {
	ProgressRepo *repository.ProgressRepository
}

func NewChallengeService(progressRepo *repository.ProgressRepository) *ChallengeService {
	return &ChallengeService{ProgressRepo: progressRepo}
}

func (s *ChallengeService) List() []content.ChallengeSpec {
	return content.Challenges()
}

func (s *ChallengeService) Get(id string) (*content.ChallengeSpec, error) {
	spec := content.ChallengeByID(id)
	if spec == nil {
		return nil, util.ErrChallengeNotFound
	}
	return spec, nil
}

// Submit validates the submission against the challenge's rules. The
// check itself is pure and cannot fail; a passing submission from a
// signed-in user additionally records the challenge as completed.
// userID 0 means a guest session, whose progress lives only in the
// client.
func (s *ChallengeService) Submit(challengeID, code string, userID uint) (validator.Result, error) {
	spec := content.ChallengeByID(challengeID)
	if spec == nil {
		return validator.Result{}, util.ErrChallengeNotFound
	}

	result := validator.Check(code, spec.Rules)

	monitoring.ChallengeSubmissions.WithLabelValues(challengeID, strconv.FormatBool(result.Passed)).Inc()

	if result.Passed && userID != 0 {
		if err := s.ProgressRepo.MarkComplete(userID, challengeID); err != nil {
			// The learner still gets the pass; completion is retried on
			// the next submission of the same challenge.
			logger.Log.Error("failed to record challenge completion",
				zap.String("challenge", challengeID),
				zap.Uint("user", userID),
				zap.Error(err))
		}
	}

	return result, nil
}
