package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/server/http/dto"
	"github.com/polkiloo/usersapi/internal/server/http/negotiation"
)

const (
	allowedCollectionMethods = "POST, GET, OPTIONS"
	headContentType          = "application/json; charset=utf-8"
)

// UserHandler serves the user resource.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	user, err := h.facade.User(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	format, err := negotiation.Select(c.GetHeader("Accept"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Render(http.StatusOK, negotiation.User(format, dto.NewUserResponse(*user)))
}

// Head handles HEAD /api/users/:id.
func (h *UserHandler) Head(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if _, err := h.facade.User(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Type", headContentType)
	c.Status(http.StatusOK)
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := bindBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.facade.PrepareUser(req.Model())
	if err != nil {
		writeError(c, err)
		return
	}

	format, err := negotiation.Select(c.GetHeader("Accept"))
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.facade.CreateUser(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Location", dto.UsersPath+"/"+created.ID.String())
	c.Render(http.StatusCreated, negotiation.CreatedID(format, created.ID))
}

// Patch handles PATCH /api/users/:id.
func (h *UserHandler) Patch(c *gin.Context) {
	var req []dto.PatchOperationRequest
	if err := bindBody(c, &req); err != nil {
		writeError(c, err)
		return
	}
	if len(req) == 0 {
		writeError(c, domainErrors.ErrMalformedRequest)
		return
	}

	id, ok := userID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.facade.PatchUser(c.Request.Context(), id, dto.PatchOperations(req)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.facade.DeleteUser(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /api/users. Unsupported Accept values fall back to JSON.
func (h *UserHandler) List(c *gin.Context) {
	page, err := h.facade.Users(c.Request.Context(), queryInt(c, "pageNumber"), queryInt(c, "pageSize"))
	if err != nil {
		writeError(c, err)
		return
	}

	header, err := paginationHeader(dto.NewPagination(page.Descriptor))
	if err != nil {
		writeError(c, err)
		return
	}

	format := negotiation.SelectOrJSON(c.GetHeader("Accept"))
	c.Header(PaginationHeader, header)
	c.Render(http.StatusOK, negotiation.Users(format, dto.NewUserResponses(page.Items)))
}

// Options handles OPTIONS /api/users.
func (h *UserHandler) Options(c *gin.Context) {
	c.Header("Allow", allowedCollectionMethods)
	c.Status(http.StatusOK)
}
