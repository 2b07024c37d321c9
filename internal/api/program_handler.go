package api

import (
	"net/http"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/scoring"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramHandler serves recommendations, programs and their sessions.
type ProgramHandler struct {
	recommendationService service.RecommendationService
	programService        service.ProgramService
}

func NewProgramHandler(recommendationService service.RecommendationService, programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{
		recommendationService: recommendationService,
		programService:        programService,
	}
}

// --- DTOs ---

type RecommendationResponse struct {
	Best   *scoring.TemplateScore  `json:"best,omitempty"`
	Scores []scoring.TemplateScore `json:"scores"`
}

type CreateProgramRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Template    domain.ProgramTemplate `json:"template"` // empty takes the best recommendation
	StartDate   *time.Time             `json:"startDate"`
}

type UpdateProgramStatusRequest struct {
	Status domain.ProgramStatus `json:"status" binding:"required"`
}

type SetRequest struct {
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Reps       *int     `json:"reps"`
	Weight     *float64 `json:"weight"`
	RPE        *float64 `json:"rpe"`
}

type CompleteSessionRequest struct {
	PerformedAt *time.Time   `json:"performedAt"`
	Duration    *int         `json:"duration"` // minutes
	Notes       string       `json:"notes"`
	Sets        []SetRequest `json:"sets" binding:"dive"`
}

func newRecommendationResponse(scores []scoring.TemplateScore) RecommendationResponse {
	resp := RecommendationResponse{Scores: scores}
	if best, ok := scoring.Best(scores); ok {
		resp.Best = &best
	}
	return resp
}

// --- Handler Methods ---

// GetRecommendations godoc
// @Summary Rank program templates for my profile
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RecommendationResponse
// @Failure 404 {object} gin.H "Profile not created yet"
// @Router /recommendations [get]
func (h *ProgramHandler) GetRecommendations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	scores, err := h.recommendationService.Recommend(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to compute recommendations.")
		return
	}
	c.JSON(http.StatusOK, newRecommendationResponse(scores))
}

// CreateProgram godoc
// @Summary Create a training program
// @Description Archives the current program and schedules the sessions of the new one.
// @Tags Programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body CreateProgramRequest true "Program"
// @Success 201 {object} service.ProgramWithSessions
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Profile not created yet"
// @Failure 422 {object} gin.H "No template fits the profile"
// @Router /programs [post]
func (h *ProgramHandler) CreateProgram(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.programService.CreateProgram(c.Request.Context(), userID, service.CreateProgramInput{
		Name:        req.Name,
		Description: req.Description,
		Template:    req.Template,
		StartDate:   req.StartDate,
	})
	if err != nil {
		respondWithError(c, err, "Failed to create program.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetPrograms godoc
// @Summary List my programs
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.TrainingProgram
// @Router /programs [get]
func (h *ProgramHandler) GetPrograms(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	programs, err := h.programService.ListPrograms(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve programs.")
		return
	}
	if programs == nil {
		programs = []domain.TrainingProgram{}
	}
	c.JSON(http.StatusOK, programs)
}

// UpdateProgramStatus godoc
// @Summary Activate or archive one of my programs
// @Tags Programs
// @Accept json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param status body UpdateProgramStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} gin.H "Program not found"
// @Router /programs/{programId}/status [patch]
func (h *ProgramHandler) UpdateProgramStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	programID, ok := pathObjectID(c, "programId")
	if !ok {
		return
	}

	var req UpdateProgramStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.programService.UpdateProgramStatus(c.Request.Context(), userID, programID, req.Status); err != nil {
		respondWithError(c, err, "Failed to update program status.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProgramSessions godoc
// @Summary List the sessions of one of my programs
// @Tags Programs
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {array} domain.TrainingSession
// @Failure 404 {object} gin.H "Program not found"
// @Router /programs/{programId}/sessions [get]
func (h *ProgramHandler) GetProgramSessions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	programID, ok := pathObjectID(c, "programId")
	if !ok {
		return
	}

	sessions, err := h.programService.ListSessions(c.Request.Context(), userID, programID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve sessions.")
		return
	}
	if sessions == nil {
		sessions = []domain.TrainingSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// CompleteSession godoc
// @Summary Log a session as done
// @Description Stores the performed sets, grants experience and refreshes leaderboard stats.
// @Tags Programs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session ID"
// @Param session body CompleteSessionRequest true "Performance"
// @Success 200 {object} service.SessionCompletion
// @Failure 404 {object} gin.H "Session not found"
// @Failure 409 {object} gin.H "Session already completed"
// @Router /sessions/{sessionId}/complete [post]
func (h *ProgramHandler) CompleteSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sessionID, ok := pathObjectID(c, "sessionId")
	if !ok {
		return
	}

	var req CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	sets := make([]domain.SetPerformance, 0, len(req.Sets))
	for _, s := range req.Sets {
		exerciseID, err := primitive.ObjectIDFromHex(s.ExerciseID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid exerciseId format.")
			return
		}
		sets = append(sets, domain.SetPerformance{
			ExerciseID: exerciseID,
			Reps:       s.Reps,
			Weight:     s.Weight,
			RPE:        s.RPE,
		})
	}

	completion, err := h.programService.CompleteSession(c.Request.Context(), userID, sessionID, service.CompleteSessionInput{
		PerformedAt: req.PerformedAt,
		Duration:    req.Duration,
		Notes:       req.Notes,
		Sets:        sets,
	})
	if err != nil {
		respondWithError(c, err, "Failed to complete session.")
		return
	}
	c.JSON(http.StatusOK, completion)
}
