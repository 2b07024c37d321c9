package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/repository"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseRequest defines the expected JSON for creating or updating an exercise.
type ExerciseRequest struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	MuscleGroupID int    `json:"muscleGroupId" binding:"required,gt=0"`
	Difficulty    string `json:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Equipment     string `json:"equipment" binding:"max=64"`
	Compound      bool   `json:"compound"`
}

// ExerciseResponse is the DTO for returning exercise details.
type ExerciseResponse struct {
	ID            string    `json:"id"`
	CoachID       string    `json:"coachId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	MuscleGroupID int       `json:"muscleGroupId"`
	Difficulty    string    `json:"difficulty,omitempty"`
	Equipment     string    `json:"equipment,omitempty"`
	Compound      bool      `json:"compound"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:            ex.ID.Hex(),
		CoachID:       ex.CoachID.Hex(),
		Name:          ex.Name,
		Description:   ex.Description,
		MuscleGroupID: ex.MuscleGroupID,
		Difficulty:    string(ex.Difficulty),
		Equipment:     ex.Equipment,
		Compound:      ex.Compound,
		CreatedAt:     ex.CreatedAt,
		UpdatedAt:     ex.UpdatedAt,
	}
}

// MapExercisesToResponse converts a slice of domain.Exercise to a slice of ExerciseResponse DTO.
func MapExercisesToResponse(exercises []domain.Exercise) []ExerciseResponse {
	responses := make([]ExerciseResponse, len(exercises))
	for i := range exercises {
		responses[i] = MapExerciseToResponse(&exercises[i])
	}
	return responses
}

func (r ExerciseRequest) toInput() service.ExerciseInput {
	return service.ExerciseInput{
		Name:          r.Name,
		Description:   r.Description,
		MuscleGroupID: r.MuscleGroupID,
		Difficulty:    domain.ExperienceLevel(r.Difficulty),
		Equipment:     r.Equipment,
		Compound:      r.Compound,
	}
}

// ExerciseQuery holds the catalog filters of GET /exercises.
type ExerciseQuery struct {
	MuscleGroupID *int   `form:"muscleGroupId" binding:"omitempty,gt=0"`
	Difficulty    string `form:"difficulty"`
	Compound      bool   `form:"compound"`
}

func (q ExerciseQuery) toFilter() repository.ExerciseFilter {
	return repository.ExerciseFilter{
		MuscleGroupID: q.MuscleGroupID,
		MaxDifficulty: domain.ExperienceLevel(strings.ToUpper(q.Difficulty)),
		CompoundOnly:  q.Compound,
	}
}

// --- Handler Methods ---

// CreateExercise godoc
// @Summary Create a new exercise
// @Description Creates a new exercise owned by the authenticated coach.
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 201 {object} ExerciseResponse "Exercise created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Router /exercises [post]
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	coachID, ok := requireUserID(c)
	if !ok {
		return
	}

	exercise, err := h.exerciseService.CreateExercise(c.Request.Context(), coachID, req.toInput())
	if err != nil {
		respondWithError(c, err, "Failed to create exercise.")
		return
	}

	c.JSON(http.StatusCreated, MapExerciseToResponse(exercise))
}

// ListExercises godoc
// @Summary Browse the exercise catalog
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param muscleGroupId query int false "Only exercises of this muscle group"
// @Param difficulty query string false "Hide exercises rated above this level"
// @Param compound query bool false "Only compound movements"
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 400 {object} gin.H "Invalid filter"
// @Router /exercises [get]
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	var query ExerciseQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid filter: "+err.Error())
		return
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), query.toFilter())
	if err != nil {
		respondWithError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// SuggestExercises godoc
// @Summary Exercises suited to my profile
// @Description Catalog entries at or below my experience level, prioritized muscle groups first.
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of exercises" default(10)
// @Success 200 {array} ExerciseResponse
// @Failure 404 {object} gin.H "No fitness profile yet"
// @Router /exercises/suggested [get]
func (h *ExerciseHandler) SuggestExercises(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := defaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSuggestionLimit {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d.", maxSuggestionLimit))
			return
		}
		limit = n
	}

	exercises, err := h.exerciseService.SuggestExercises(c.Request.Context(), userID, limit)
	if err != nil {
		respondWithError(c, err, "Failed to suggest exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetCoachExercises godoc
// @Summary Get exercises for the authenticated coach
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ExerciseResponse "List of exercises"
// @Failure 403 {object} gin.H "Forbidden (not a coach)"
// @Router /exercises/mine [get]
func (h *ExerciseHandler) GetCoachExercises(c *gin.Context) {
	coachID, ok := requireUserID(c)
	if !ok {
		return
	}

	exercises, err := h.exerciseService.GetExercisesByCoach(c.Request.Context(), coachID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve exercises.")
		return
	}
	c.JSON(http.StatusOK, MapExercisesToResponse(exercises))
}

// GetExercise godoc
// @Summary Get one exercise
// @Tags Exercises
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 200 {object} ExerciseResponse
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [get]
func (h *ExerciseHandler) GetExercise(c *gin.Context) {
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.GetExerciseByID(c.Request.Context(), exerciseID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve exercise.")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// UpdateExercise godoc
// @Summary Update one of my exercises
// @Tags Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Param exercise body ExerciseRequest true "Exercise details"
// @Success 200 {object} ExerciseResponse
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [put]
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	coachID, ok := requireUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), coachID, exerciseID, req.toInput())
	if err != nil {
		respondWithError(c, err, "Failed to update exercise.")
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}

// DeleteExercise godoc
// @Summary Delete one of my exercises
// @Tags Exercises
// @Security BearerAuth
// @Param id path string true "Exercise ID"
// @Success 204
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Exercise not found"
// @Router /exercises/{id} [delete]
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	coachID, ok := requireUserID(c)
	if !ok {
		return
	}
	exerciseID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), coachID, exerciseID); err != nil {
		respondWithError(c, err, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}
