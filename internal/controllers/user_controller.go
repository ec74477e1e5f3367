package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"dormhub/internal/models"
	"dormhub/internal/store"
)

type createUserInput struct {
	Email    string      `json:"email" binding:"required,email"`
	Name     string      `json:"name" binding:"required"`
	Role     models.Role `json:"role" binding:"required"`
	Password string      `json:"password" binding:"required,min=8"`
}

// CreateUser is the admin-only account creation endpoint. The response never
// carries the password hash.
func (h *Handler) CreateUser(c *gin.Context) {
	var input createUserInput
	if !bindJSON(c, &input) {
		return
	}
	if !input.Role.Valid() {
		validationError(c, "role", "must be one of admin, dorm_manager, student")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(c, err)
		return
	}

	user := models.User{
		Email:    input.Email,
		Name:     input.Name,
		Role:     input.Role,
		Password: string(hash),
	}
	if err := h.Store.CreateUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "email_taken"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
