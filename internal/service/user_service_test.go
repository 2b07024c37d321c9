package service

import (
	"context"
	"testing"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ResolveProvisionsOnce(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.userService.Resolve(ctx, Identity{Email: " Ana@Example.com ", Name: "Ana", Role: domain.RoleCoach})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, domain.RoleCoach, user.Role)
	assert.Equal(t, domain.StartingLevel, user.Level)
	assert.Equal(t, domain.StartingNextLevelExp, user.NextLevelExp)

	again, err := env.userService.Resolve(ctx, Identity{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Len(t, env.users.users, 1)
}

func TestUserService_ResolveDefaultsToClient(t *testing.T) {
	env := newTestEnv()

	user, err := env.userService.Resolve(context.Background(), Identity{Email: "bo@example.com", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, user.Role)
}

func TestUserService_ResolveWithoutEmail(t *testing.T) {
	env := newTestEnv()

	_, err := env.userService.Resolve(context.Background(), Identity{Name: "nobody"})
	assert.ErrorIs(t, err, ErrValidationFailed)
}
