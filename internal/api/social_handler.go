package api

import (
	"net/http"

	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

type SocialHandler struct {
	socialService service.SocialService
}

func NewSocialHandler(socialService service.SocialService) *SocialHandler {
	return &SocialHandler{socialService: socialService}
}

type AddFriendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// GetFriends godoc
// @Summary List my friends
// @Tags Social
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Router /friends [get]
func (h *SocialHandler) GetFriends(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	friends, err := h.socialService.ListFriends(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve friends.")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(friends))
}

// AddFriend godoc
// @Summary Add a friend by email
// @Description The friendship is recorded on both sides.
// @Tags Social
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param friend body AddFriendRequest true "Friend's email"
// @Success 201 {object} UserResponse
// @Failure 404 {object} gin.H "No user with this email"
// @Failure 409 {object} gin.H "Already friends"
// @Router /friends [post]
func (h *SocialHandler) AddFriend(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	friend, err := h.socialService.AddFriendByEmail(c.Request.Context(), userID, req.Email)
	if err != nil {
		respondWithError(c, err, "Failed to add friend.")
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(friend))
}
