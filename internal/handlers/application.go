package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portal-labs/application-portal-api/internal/dto"
	apierrors "github.com/portal-labs/application-portal-api/internal/errors"
	"github.com/portal-labs/application-portal-api/internal/middleware"
	"github.com/portal-labs/application-portal-api/internal/models"
	"github.com/portal-labs/application-portal-api/internal/services"
)

// ApplicationHandler coordinates application submission and review handlers.
type ApplicationHandler struct {
	appService *services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// Submit stores a new application for the authenticated user. Owner,
// username and status are taken from the session, not the request body.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "Please log in")
		return
	}

	type SubmitRequest struct {
		Content string `json:"content" binding:"max=10000"`
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	app, err := h.appService.Submit(identity, req.Content)
	if err != nil {
		apierrors.InternalError(c, "An error occurred while creating application")
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationDTO(*app))
}

// List returns all applications.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.appService.List()
	if err != nil {
		apierrors.InternalError(c, "An error occurred while fetching applications")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTOs(apps))
}

// ListMine returns the authenticated user's applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "Please log in")
		return
	}

	apps, err := h.appService.ListForUser(identity.UserID)
	if err != nil {
		apierrors.InternalError(c, "An error occurred while fetching applications")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTOs(apps))
}

// Review updates the status of an application.
func (h *ApplicationHandler) Review(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	type ReviewRequest struct {
		Status models.ApplicationStatus `json:"status" binding:"required,oneof=pending approved rejected"`
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	app, err := h.appService.Review(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			apierrors.NotFound(c, "Application not found")
			return
		}
		apierrors.InternalError(c, "An error occurred while updating application")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*app))
}

// Delete removes an application.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.appService.Delete(id); err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			apierrors.NotFound(c, "Application not found")
			return
		}
		apierrors.InternalError(c, "An error occurred while deleting application")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application deleted successfully",
	})
}
