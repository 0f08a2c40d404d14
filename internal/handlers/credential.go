package handlers

import (
	"errors"
	"net/http"

	"github.com/vedp205/chronos-home/internal/auth"
	dom "github.com/vedp205/chronos-home/internal/domain"
	"github.com/vedp205/chronos-home/internal/dto"
	"github.com/vedp205/chronos-home/internal/service"

	"github.com/gin-gonic/gin"
)

type CredentialHandler struct {
	svc *service.CredentialService
}

func NewCredentialHandler(svc *service.CredentialService) *CredentialHandler {
	return &CredentialHandler{svc: svc}
}

// Create godoc
// @Summary      Create a stored password
// @Tags         credentials
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCredentialRequest  true  "Credential body"
// @Success      201   {object}  dto.CredentialResponse
// @Failure      400   {object}  map[string]string
// @Router       /credentials [post]
func (h *CredentialHandler) Create(c *gin.Context) {
	var req dto.CreateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := auth.UserIDFromContext(c)
	cred, err := h.svc.Create(c.Request.Context(), dom.Credential{
		UserID:   userID,
		Title:    req.Title,
		Username: req.Username,
		Password: req.Password,
		URL:      req.URL,
		Notes:    req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create credential"})
		return
	}
	c.JSON(http.StatusCreated, credentialToResponse(cred))
}

// List godoc
// @Summary      List stored passwords
// @Tags         credentials
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListCredentialsResponse
// @Failure      500  {object}  map[string]string
// @Router       /credentials [get]
func (h *CredentialHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list credentials"})
		return
	}
	out := make([]dto.CredentialResponse, len(list))
	for i := range list {
		out[i] = credentialToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListCredentialsResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a stored password by ID
// @Tags         credentials
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Credential ID"
// @Success      200  {object}  dto.CredentialResponse
// @Failure      404  {object}  map[string]string
// @Router       /credentials/{id} [get]
func (h *CredentialHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	cred, err := h.svc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get credential"})
		return
	}
	c.JSON(http.StatusOK, credentialToResponse(cred))
}

// Update godoc
// @Summary      Update a stored password
// @Tags         credentials
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Credential ID"
// @Param        body  body      dto.UpdateCredentialRequest  true  "Partial update"
// @Success      200   {object}  dto.CredentialResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /credentials/{id} [put]
func (h *CredentialHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := auth.UserIDFromContext(c)
	cred, err := h.svc.Update(c.Request.Context(), userID, id,
		req.Title, req.Username, req.Password, req.URL, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update credential"})
		return
	}
	c.JSON(http.StatusOK, credentialToResponse(cred))
}

// Delete godoc
// @Summary      Delete a stored password
// @Tags         credentials
// @Security     CookieAuth
// @Param        id   path  int  true  "Credential ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /credentials/{id} [delete]
func (h *CredentialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID := auth.UserIDFromContext(c)
	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete credential"})
		return
	}
	c.Status(http.StatusNoContent)
}

func credentialToResponse(cr dom.Credential) dto.CredentialResponse {
	return dto.CredentialResponse{
		ID:        cr.ID,
		Title:     cr.Title,
		Username:  cr.Username,
		Password:  cr.Password,
		URL:       cr.URL,
		Notes:     cr.Notes,
		CreatedAt: cr.CreatedAt,
		UpdatedAt: cr.UpdatedAt,
	}
}
