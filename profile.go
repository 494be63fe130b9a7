package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getProfile returns the profile with its computed calorie targets.
// GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	p := h.tracker.currentProfile()
	c.JSON(http.StatusOK, profileResponse{Profile: p, Targets: computeTargets(p)})
}

// patchProfile updates only the provided profile fields.
// PATCH /api/profile. Uses pointer fields in the request body to distinguish
// "not provided" from zero. Gender, activity_level and goal are stored as
// sent: unknown values fall back during target computation instead of
// being rejected here.
func (h *Handler) patchProfile(c *gin.Context) {
	var body patchProfileRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body == (patchProfileRequest{}) {
		apiError(c, http.StatusBadRequest, "no fields to update")
		return
	}

	p := h.tracker.updateProfile(c, body.apply)

	c.JSON(http.StatusOK, profileResponse{Profile: p, Targets: computeTargets(p)})
}

// apply returns p with every non-nil field of r written over it.
func (r patchProfileRequest) apply(p userProfile) userProfile {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Age != nil {
		p.Age = *r.Age
	}
	if r.Gender != nil {
		p.Gender = *r.Gender
	}
	if r.HeightCM != nil {
		p.HeightCM = *r.HeightCM
	}
	if r.WeightKG != nil {
		p.WeightKG = *r.WeightKG
	}
	if r.ActivityLevel != nil {
		p.ActivityLevel = *r.ActivityLevel
	}
	if r.Goal != nil {
		p.Goal = *r.Goal
	}
	if r.DailyProteinTarget != nil {
		p.DailyProteinTarget = *r.DailyProteinTarget
	}
	return p
}
