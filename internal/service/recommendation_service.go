package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/metrics"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const megabyte = 1024 * 1024

type RecommendationService interface {
	// Recommend ranks every template for the user's stored profile.
	Recommend(ctx context.Context, userID primitive.ObjectID) ([]scoring.TemplateScore, error)
	// Score ranks every template for an arbitrary profile.
	Score(profile scoring.Profile) []scoring.TemplateScore
}

type recommendationService struct {
	profiles ProfileService
	cache    *freecache.Cache
	ttl      time.Duration
	metrics  *metrics.Manager
}

// NewRecommendationService builds the service with an in-process cache of cacheSizeMB megabytes.
// Entries are keyed by the scoring input, so a profile change simply misses.
func NewRecommendationService(profiles ProfileService, cacheSizeMB int, ttl time.Duration, m *metrics.Manager) RecommendationService {
	if cacheSizeMB <= 0 {
		cacheSizeMB = 1
	}
	return &recommendationService{
		profiles: profiles,
		cache:    freecache.NewCache(cacheSizeMB * megabyte),
		ttl:      ttl,
		metrics:  m,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID primitive.ObjectID) ([]scoring.TemplateScore, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Score(scoring.FromFitnessProfile(profile)), nil
}

func (s *recommendationService) Score(profile scoring.Profile) []scoring.TemplateScore {
	key, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal scoring profile: %s", err)
		return s.score(profile)
	}
	cacheKey := append([]byte("reco::"), key...)

	if cached, err := s.cache.Get(cacheKey); err == nil {
		var scores []scoring.TemplateScore
		if err = json.Unmarshal(cached, &scores); err == nil {
			s.metrics.CounterRecommendationCache.WithLabelValues("hit").Inc()
			return scores
		}
		log.Errorf("failed to unmarshal cached recommendation: %s", err)
	}
	s.metrics.CounterRecommendationCache.WithLabelValues("miss").Inc()

	scores := s.score(profile)

	if value, err := json.Marshal(scores); err == nil {
		if err = s.cache.Set(cacheKey, value, int(s.ttl.Seconds())); err != nil {
			log.Errorf("failed to cache recommendation: %s", err)
		}
	}
	return scores
}

func (s *recommendationService) score(profile scoring.Profile) []scoring.TemplateScore {
	scores := scoring.ScoreTemplates(profile)
	if best, ok := scoring.Best(scores); ok {
		s.metrics.CounterTemplateScorings.WithLabelValues(string(best.Template)).Inc()
		log.WithFields(log.Fields{
			"frequency": profile.TrainingFrequency,
			"level":     profile.ExperienceLevel,
			"best":      best.Template,
			"score":     best.Score,
		}).Debug("scored templates")
	}
	return scores
}
