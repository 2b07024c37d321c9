package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CoachingService interface {
	AddClientByEmail(ctx context.Context, coachID primitive.ObjectID, clientEmail string) (*domain.User, error)
	GetManagedClients(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error)
	// GetClientRecommendations ranks templates for a client the coach manages.
	GetClientRecommendations(ctx context.Context, coachID, clientID primitive.ObjectID) ([]scoring.TemplateScore, error)
}

// coachingService implements the CoachingService interface.
type coachingService struct {
	userRepo        repository.UserRepository
	recommendations RecommendationService
}

func NewCoachingService(userRepo repository.UserRepository, recommendations RecommendationService) CoachingService {
	return &coachingService{
		userRepo:        userRepo,
		recommendations: recommendations,
	}
}

// AddClientByEmail finds a client by email and assigns them to the coach.
func (s *coachingService) AddClientByEmail(ctx context.Context, coachID primitive.ObjectID, clientEmail string) (*domain.User, error) {
	clientEmail = strings.ToLower(strings.TrimSpace(clientEmail))
	if coachID == primitive.NilObjectID || clientEmail == "" {
		return nil, ErrValidationFailed
	}

	client, err := s.userRepo.GetByEmail(ctx, clientEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if client.Role != domain.RoleClient {
		return nil, ErrClientNotRole
	}

	if client.CoachID != nil && *client.CoachID != primitive.NilObjectID {
		if *client.CoachID == coachID {
			// already managed by this coach
			return client, nil
		}
		return nil, ErrClientAlreadyAssigned
	}

	if err = s.userRepo.AddClientIDToCoach(ctx, coachID, client.ID); err != nil {
		return nil, err
	}

	// No transaction: if this fails the coach lists a client without a back link, and adding
	// the client again completes it.
	if err = s.userRepo.SetCoachForClient(ctx, client.ID, coachID); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"coach_id": coachID.Hex(), "client_id": client.ID.Hex()}).Info("client assigned to coach")
	client.CoachID = &coachID
	return client, nil
}

// GetManagedClients retrieves the list of clients managed by the coach.
func (s *coachingService) GetManagedClients(ctx context.Context, coachID primitive.ObjectID) ([]domain.User, error) {
	if coachID == primitive.NilObjectID {
		return nil, ErrValidationFailed
	}
	clients, err := s.userRepo.GetClientsByCoachID(ctx, coachID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return clients, nil
}

func (s *coachingService) GetClientRecommendations(ctx context.Context, coachID, clientID primitive.ObjectID) ([]scoring.TemplateScore, error) {
	client, err := s.userRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if client.CoachID == nil || *client.CoachID != coachID {
		return nil, ErrClientNotManaged
	}
	return s.recommendations.Recommend(ctx, clientID)
}
