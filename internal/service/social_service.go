package service

import (
	"context"
	"errors"
	"strings"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SocialService interface {
	// AddFriendByEmail links both users as friends.
	AddFriendByEmail(ctx context.Context, userID primitive.ObjectID, email string) (*domain.User, error)
	ListFriends(ctx context.Context, userID primitive.ObjectID) ([]domain.User, error)
}

type socialService struct {
	userRepo repository.UserRepository
}

func NewSocialService(userRepo repository.UserRepository) SocialService {
	return &socialService{userRepo: userRepo}
}

func (s *socialService) AddFriendByEmail(ctx context.Context, userID primitive.ObjectID, email string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrValidationFailed
	}

	me, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	friend, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, err
	}

	if friend.ID == me.ID {
		return nil, ErrCannotFriendSelf
	}
	if me.HasFriend(friend.ID) && friend.HasFriend(me.ID) {
		return nil, ErrAlreadyFriends
	}

	// $addToSet on both sides, so a retry after a partial failure repairs the link
	if err := s.userRepo.AddFriend(ctx, me.ID, friend.ID); err != nil {
		return nil, err
	}
	if err := s.userRepo.AddFriend(ctx, friend.ID, me.ID); err != nil {
		return nil, err
	}
	return friend, nil
}

func (s *socialService) ListFriends(ctx context.Context, userID primitive.ObjectID) ([]domain.User, error) {
	me, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.userRepo.GetByIDs(ctx, me.FriendIDs)
}
