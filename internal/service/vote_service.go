package service

import (
	"codefix_backend/internal/config"
	"codefix_backend/internal/model"
	"codefix_backend/internal/repository"
	"codefix_backend/internal/util"
	"codefix_backend/pkg/logger"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type VoteService struct {
	VoteRepo *repository.VoteRepository
	Redis    *redis.Client
	Cfg      *config.Config
}

func NewVoteService(voteRepo *repository.VoteRepository, rdb *redis.Client, cfg *config.Config) *VoteService {
	return &VoteService{
		VoteRepo: voteRepo,
		Redis:    rdb,
		Cfg:      cfg,
	}
}

// RatingView is what a caller displays for one lesson: the aggregate
// score plus that caller's own vote.
type RatingView struct {
	Score    int                 `json:"score"`
	Likes    int                 `json:"likes"`
	Dislikes int                 `json:"dislikes"`
	UserVote model.VoteDirection `json:"userVote"`
}

func ratingCacheKey(lessonID string) string {
	return fmt.Sprintf("rating:%s", lessonID)
}

// GetRating returns the lesson rating, serving the shared aggregate
// from cache when fresh. The caller's own vote is always read from the
// database; it is per-user and cheap.
func (s *VoteService) GetRating(ctx context.Context, lessonID string, userID uint) (RatingView, error) {
	view := RatingView{UserVote: model.NoVote}

	cached, err := s.Redis.Get(ctx, ratingCacheKey(lessonID)).Result()
	if err == nil && json.Unmarshal([]byte(cached), &view) == nil {
		// cache hit, only the per-user part is left
	} else {
		rating, err := s.VoteRepo.FindRating(lessonID)
		if err != nil {
			return view, err
		}
		view.Score = rating.Score
		view.Likes = rating.Likes
		view.Dislikes = rating.Dislikes
		s.cacheRating(ctx, lessonID, view)
	}

	if userID != 0 {
		vote, err := s.VoteRepo.FindUserVote(userID, lessonID)
		if err != nil {
			return view, err
		}
		view.UserVote = vote
	} else {
		view.UserVote = model.NoVote
	}
	return view, nil
}

// CastVote runs the vote transaction and reports the committed effect.
// Any error means nothing was applied and the caller should roll its
// optimistic state back.
func (s *VoteService) CastVote(ctx context.Context, lessonID string, userID uint, dir model.VoteDirection) (model.VoteEffect, error) {
	if !dir.Valid() {
		return model.VoteEffect{}, util.ErrInvalidVoteDirection
	}

	effect, err := s.VoteRepo.CastVote(userID, lessonID, dir)
	if err != nil {
		logger.Log.Warn("vote transaction failed",
			zap.String("lesson", lessonID),
			zap.Uint("user", userID),
			zap.Error(err))
		return model.VoteEffect{}, err
	}

	// The cached aggregate is stale now.
	if err := s.Redis.Del(ctx, ratingCacheKey(lessonID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate rating cache", zap.String("lesson", lessonID), zap.Error(err))
	}
	s.Redis.Del(ctx, statsCacheKey)

	return effect, nil
}

func (s *VoteService) cacheRating(ctx context.Context, lessonID string, view RatingView) {
	// Cache only the shared aggregate, never the per-user vote.
	shared := RatingView{Score: view.Score, Likes: view.Likes, Dislikes: view.Dislikes}
	payload, err := json.Marshal(shared)
	if err != nil {
		return
	}
	ttl := time.Duration(s.Cfg.Cache.RatingTTLSeconds) * time.Second
	if err := s.Redis.Set(ctx, ratingCacheKey(lessonID), payload, ttl).Err(); err != nil {
		logger.Log.Warn("failed to cache rating", zap.String("lesson", lessonID), zap.Error(err))
	}
}

// ApplyOptimistic predicts the view after a vote action, for callers
// that show the effect before the transaction resolves. The prediction
// uses the same transition table as the transaction itself, so a
// committed outcome never disagrees with it.
func ApplyOptimistic(view RatingView, dir model.VoteDirection) RatingView {
	effect := model.Transition(view.UserVote, dir)
	return RatingView{
		Score:    view.Score + effect.Score,
		Likes:    view.Likes + effect.Likes,
		Dislikes: view.Dislikes + effect.Dislikes,
		UserVote: effect.Next,
	}
}

// Reconcile resolves an optimistic update against the transaction
// outcome: a committed transaction keeps the optimistic view, a failed
// one restores the prior view. Failure means no partial state exists
// server-side, so the prior view is exact.
func Reconcile(prior, optimistic RatingView, committed bool) RatingView {
	if committed {
		return optimistic
	}
	return prior
}
