package api

import (
	"net/http"

	"github.com/yulannn/Myo-Fitness-sub004/internal/domain"
	"github.com/yulannn/Myo-Fitness-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileRequest is the body of PUT /profile. Ranges are checked by the service.
type ProfileRequest struct {
	Age               int                    `json:"age" binding:"required"`
	Weight            float64                `json:"weight" binding:"required"`
	TargetWeight      *float64               `json:"targetWeight"`
	TrainingFrequency int                    `json:"trainingFrequency" binding:"required"`
	ExperienceLevel   domain.ExperienceLevel `json:"experienceLevel" binding:"required"`
	Goals             []domain.Goal          `json:"goals"`
	MusclePriorities  []int                  `json:"musclePriorities"`
	TrainingDays      []domain.WeekDay       `json:"trainingDays"`
}

// GetProfile godoc
// @Summary Get my fitness profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.FitnessProfile
// @Failure 404 {object} gin.H "Profile not created yet"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Create or replace my fitness profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body ProfileRequest true "Profile"
// @Success 200 {object} domain.FitnessProfile
// @Failure 400 {object} gin.H "Invalid input"
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.SaveProfile(c.Request.Context(), userID, service.ProfileInput{
		Age:               req.Age,
		Weight:            req.Weight,
		TargetWeight:      req.TargetWeight,
		TrainingFrequency: req.TrainingFrequency,
		ExperienceLevel:   req.ExperienceLevel,
		Goals:             req.Goals,
		MusclePriorities:  req.MusclePriorities,
		TrainingDays:      req.TrainingDays,
	})
	if err != nil {
		respondWithError(c, err, "Failed to save profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}
