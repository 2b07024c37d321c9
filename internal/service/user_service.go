package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is what the bearer token says about the caller.
type Identity struct {
	Email string
	Name  string
	Role  domain.Role
}

type UserService interface {
	// Resolve returns the user behind an identity, creating it on first sight.
	Resolve(ctx context.Context, identity Identity) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Resolve(ctx context.Context, identity Identity) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: token carries no email", ErrValidationFailed)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	role := identity.Role
	if role != domain.RoleCoach {
		role = domain.RoleClient
	}
	user = &domain.User{
		Name:         identity.Name,
		Email:        email,
		Role:         role,
		Level:        domain.StartingLevel,
		NextLevelExp: domain.StartingNextLevelExp,
	}
	if _, err = s.userRepo.Create(ctx, user); err != nil {
		// a concurrent first request may have provisioned the same user
		if errors.Is(err, repository.ErrDuplicate) {
			return s.userRepo.GetByEmail(ctx, email)
		}
		return nil, err
	}

	log.WithFields(log.Fields{"user_id": user.ID.Hex(), "role": user.Role}).Info("provisioned new user")
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
