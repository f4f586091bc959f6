package api

import (
	"errors"
	"net/http"

	"gymadmin/gym-app/internal/domain"
	"gymadmin/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler holds the member service dependency.
type MemberHandler struct {
	memberService service.MemberService
}

// NewMemberHandler creates a new MemberHandler.
func NewMemberHandler(memberService service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// --- DTOs ---

// CreateUserRequest defines the expected JSON for registering a member. All
// fields are mandatory, as on the registration form.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	IDNumber string `json:"idNumber" binding:"required"`
	DOB      string `json:"dob" binding:"required"`
}

// UpdateUserRequest defines a partial member update; absent fields are left
// unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	IDNumber *string `json:"idNumber"`
	DOB      *string `json:"dob"`
}

// --- Handler Methods ---

// CreateUser registers a new member.
func (h *MemberHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := h.memberService.CreateUser(c.Request.Context(), req.Name, req.Surname, req.IDNumber, req.DOB)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateIDNumber):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to register user.")
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers returns all members. An optional idNumber query looks up the
// single member holding that national ID number.
func (h *MemberHandler) ListUsers(c *gin.Context) {
	if idNumber := c.Query("idNumber"); idNumber != "" {
		user, err := h.memberService.GetUserByIDNumber(c.Request.Context(), idNumber)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				abortWithError(c, http.StatusNotFound, err.Error())
			} else {
				abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
			}
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}

	users, err := h.memberService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve users.")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns one member by id.
func (h *MemberHandler) GetUser(c *gin.Context) {
	user, err := h.memberService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve user.")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser applies a partial update to a member.
func (h *MemberHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	patch := domain.UserPatch{
		Name:     req.Name,
		Surname:  req.Surname,
		IDNumber: req.IDNumber,
		DOB:      req.DOB,
	}
	user, err := h.memberService.UpdateUser(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidationFailed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update user.")
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a member. Deleting an unknown id is a no-op success.
func (h *MemberHandler) DeleteUser(c *gin.Context) {
	if err := h.memberService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete user.")
		return
	}
	c.Status(http.StatusNoContent)
}
