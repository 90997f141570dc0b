package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gdugdh24/heartline-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

const profileNotFound = "Profile not found"

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// profileID parses the path id. profiles.id is a SERIAL (int4) column, so a
// positive id past its range cannot name a row and is reported as not found.
func profileID(c *gin.Context) (int, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	switch {
	case errors.Is(err, strconv.ErrRange) && id > 0:
		abortWithError(c, http.StatusNotFound, KindNotFound, profileNotFound)
		return 0, false
	case err != nil || id < 1:
		abortWithError(c, http.StatusBadRequest, KindValidation, "invalid profile id")
		return 0, false
	}
	return int(id), true
}

// CreateProfile handles POST /api/profiles
// @Summary Create profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body profile.ProfileRequest true "Profile data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req profile.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, KindValidation, bindingErrorMessage(err))
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), &req)
	if err != nil {
		writeDomainError(c, err, profileNotFound, "failed to create profile")
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		ID:      created.ID,
		Message: "Profile created successfully!",
	})
}

// ListProfiles handles GET /api/profiles
// @Summary List profiles
// @Description Returns every profile; there is no pagination
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.Profile
// @Failure 500 {object} ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileUseCase.ListProfiles(c.Request.Context())
	if err != nil {
		writeDomainError(c, err, profileNotFound, "failed to list profiles")
		return
	}

	c.JSON(http.StatusOK, profiles)
}

// GetProfile handles GET /api/profiles/:id
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	p, err := h.profileUseCase.GetProfile(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err, profileNotFound, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProfile handles PUT /api/profiles/:id
// @Summary Replace profile
// @Description Every field is required; partial updates are rejected
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param request body profile.ProfileRequest true "Profile data"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/{id} [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	var req profile.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, KindValidation, bindingErrorMessage(err))
		return
	}

	if _, err := h.profileUseCase.UpdateProfile(c.Request.Context(), id, &req); err != nil {
		writeDomainError(c, err, profileNotFound, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile updated successfully!"})
}

// DeleteProfile handles DELETE /api/profiles/:id
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := profileID(c)
	if !ok {
		return
	}

	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), id); err != nil {
		writeDomainError(c, err, profileNotFound, "failed to delete profile")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Profile deleted successfully!"})
}
