package api

import (
	"net/http"
	"strings"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/leaderboard"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// MyStatsResponse is the caller's aggregate plus their level.
type MyStatsResponse struct {
	Stats    *domain.LeaderboardStats `json:"stats"`
	Progress leaderboard.Progress     `json:"progress"`
}

// GetFriendsLeaderboard godoc
// @Summary Leaderboard among me and my friends
// @Tags Leaderboard
// @Produce json
// @Security BearerAuth
// @Param type query string false "TOTAL_SESSIONS (default), CURRENT_STREAK, LEVEL or TOTAL_VOLUME"
// @Success 200 {object} service.LeaderboardView
// @Failure 400 {object} gin.H "Unknown type"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetFriendsLeaderboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	t := domain.LeaderboardType(strings.ToUpper(c.DefaultQuery("type", string(domain.LeaderboardTotalSessions))))
	view, err := h.leaderboardService.GetFriendsLeaderboard(c.Request.Context(), userID, t)
	if err != nil {
		respondWithError(c, err, "Failed to build leaderboard.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMyStats godoc
// @Summary My leaderboard stats and level
// @Tags Leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MyStatsResponse
// @Router /leaderboard/me [get]
func (h *LeaderboardHandler) GetMyStats(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	stats, err := h.leaderboardService.GetUserStats(c.Request.Context(), user.ID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve stats.")
		return
	}
	c.JSON(http.StatusOK, MyStatsResponse{Stats: stats, Progress: leaderboard.ProgressOf(user)})
}

// RefreshMyStats godoc
// @Summary Recompute my leaderboard stats now
// @Tags Leaderboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.LeaderboardStats
// @Router /leaderboard/refresh [post]
func (h *LeaderboardHandler) RefreshMyStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.leaderboardService.UpdateUserStats(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to refresh stats.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
