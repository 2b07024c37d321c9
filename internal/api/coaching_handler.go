package api

import (
	"net/http"

	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

type CoachingHandler struct {
	coachingService service.CoachingService
}

func NewCoachingHandler(coachingService service.CoachingService) *CoachingHandler {
	return &CoachingHandler{coachingService: coachingService}
}

// --- DTOs for Client Management ---
type AddClientRequest struct {
	ClientEmail string `json:"clientEmail" binding:"required,email"`
}

// AddClientByEmail godoc
// @Summary Add a client to the coach's roster by email
// @Description Associates an existing client user with the authenticated coach.
// @Tags Coach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientRequest body AddClientRequest true "Client's email"
// @Success 200 {object} UserResponse "Client successfully added/associated"
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 403 {object} gin.H "Forbidden (not a coach, or user is not a client)"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 409 {object} gin.H "Client already has a coach"
// @Router /coach/clients [post]
func (h *CoachingHandler) AddClientByEmail(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, ok := requireUserID(c)
	if !ok {
		return
	}

	client, err := h.coachingService.AddClientByEmail(c.Request.Context(), coachID, req.ClientEmail)
	if err != nil {
		respondWithError(c, err, "Failed to add client.")
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(client))
}

// GetManagedClients godoc
// @Summary Get the coach's managed clients
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse "List of managed clients"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Router /coach/clients [get]
func (h *CoachingHandler) GetManagedClients(c *gin.Context) {
	coachID, ok := requireUserID(c)
	if !ok {
		return
	}

	clients, err := h.coachingService.GetManagedClients(c.Request.Context(), coachID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve managed clients.")
		return
	}

	c.JSON(http.StatusOK, MapUsersToResponse(clients))
}

// GetClientRecommendations godoc
// @Summary Rank program templates for one of my clients
// @Tags Coach
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} RecommendationResponse
// @Failure 403 {object} gin.H "Client is not managed by this coach"
// @Failure 404 {object} gin.H "Client or profile not found"
// @Router /coach/clients/{clientId}/recommendations [get]
func (h *CoachingHandler) GetClientRecommendations(c *gin.Context) {
	coachID, ok := requireUserID(c)
	if !ok {
		return
	}
	clientID, ok := pathObjectID(c, "clientId")
	if !ok {
		return
	}

	scores, err := h.coachingService.GetClientRecommendations(c.Request.Context(), coachID, clientID)
	if err != nil {
		respondWithError(c, err, "Failed to compute recommendations.")
		return
	}
	c.JSON(http.StatusOK, newRecommendationResponse(scores))
}
