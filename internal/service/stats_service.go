package service

import (
	"codefix_backend/internal/config"
	"codefix_backend/internal/model"
	"codefix_backend/internal/repository"
	"codefix_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const statsCacheKey = "stats:global"

type StatsService struct {
	StatsRepo *repository.StatsRepository
	Redis     *redis.Client
	Cfg       *config.Config
}

func NewStatsService(statsRepo *repository.StatsRepository, rdb *redis.Client, cfg *config.Config) *StatsService {
	return &StatsService{
		StatsRepo: statsRepo,
		Redis:     rdb,
		Cfg:       cfg,
	}
}

// GetGlobalStats returns the site-wide aggregate, cached briefly since
// it sits on the landing page.
func (s *StatsService) GetGlobalStats(ctx context.Context) (*model.GlobalStats, error) {
	cached, err := s.Redis.Get(ctx, statsCacheKey).Result()
	if err == nil {
		var stats model.GlobalStats
		if json.Unmarshal([]byte(cached), &stats) == nil {
			return &stats, nil
		}
	}

	stats, err := s.StatsRepo.Get()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		ttl := time.Duration(s.Cfg.Cache.StatsTTLSeconds) * time.Second
		if err := s.Redis.Set(ctx, statsCacheKey, payload, ttl).Err(); err != nil {
			logger.Log.Warn("failed to cache global stats", zap.Error(err))
		}
	}

	return stats, nil
}

// ConsistencyReport compares the denormalized total score against the
// sum of all lesson scores. The two only ever diverge if a write
// bypasses the vote transaction, so this is a detection surface for
// the admin dashboard rather than a repair mechanism.
type ConsistencyReport struct {
	TotalScore     int   `json:"totalScore"`
	SumLessonScore int64 `json:"sumLessonScore"`
	Consistent     bool  `json:"consistent"`
}

func (s *StatsService) CheckConsistency() (*ConsistencyReport, error) {
	stats, err := s.StatsRepo.Get()
	if err != nil {
		return nil, err
	}
	sum, err := s.StatsRepo.SumLessonScores()
	if err != nil {
		return nil, err
	}
	return &ConsistencyReport{
		TotalScore:     stats.TotalScore,
		SumLessonScore: sum,
		Consistent:     int64(stats.TotalScore) == sum,
	}, nil
}
