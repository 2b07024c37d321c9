package api

import (
	"net/http"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/leaderboard"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the caller's own account.
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Email        string                 `json:"email"`
	Role         domain.Role            `json:"role"`
	Level        int                    `json:"level"`
	Experience   int                    `json:"experience"`
	NextLevelExp int                    `json:"nextLevelExp"`
	Badges       []domain.UnlockedBadge `json:"badges,omitempty"`
	CreatedAt    time.Time              `json:"createdAt"`
	ClientIDs    []string               `json:"clientIds,omitempty"`
	CoachID      *string                `json:"coachId,omitempty"`
}

// MeResponse adds the leveling state to the caller's account.
type MeResponse struct {
	UserResponse
	ToNextLevel int `json:"toNextLevel"`
	FriendCount int `json:"friendCount"`
}

// MapUserToResponse converts a domain.User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}

	resp := UserResponse{
		ID:           user.ID.Hex(),
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		Level:        user.Level,
		Experience:   user.Experience,
		NextLevelExp: user.NextLevelExp,
		Badges:       user.Badges,
		CreatedAt:    user.CreatedAt,
	}
	if len(user.ClientIDs) > 0 {
		resp.ClientIDs = make([]string, len(user.ClientIDs))
		for i, id := range user.ClientIDs {
			resp.ClientIDs[i] = id.Hex()
		}
	}
	if user.CoachID != nil {
		coachID := user.CoachID.Hex()
		resp.CoachID = &coachID
	}
	return resp
}

// MapUsersToResponse converts a slice of domain.User to UserResponse DTOs.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// Me godoc
// @Summary Get the authenticated user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		UserResponse: MapUserToResponse(user),
		ToNextLevel:  leaderboard.ProgressOf(user).ToNextLevel(),
		FriendCount:  len(user.FriendIDs),
	})
}
