package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dormhub/internal/models"
	"dormhub/internal/store"
)

type createStudentInput struct {
	UserID    uint   `json:"userId" binding:"required"`
	StudentNo string `json:"studentNo" binding:"required"`
}

// CreateStudent links a new student record to an existing user account.
func (h *Handler) CreateStudent(c *gin.Context) {
	var input createStudentInput
	if !bindJSON(c, &input) {
		return
	}

	student := models.Student{UserID: input.UserID, StudentNo: input.StudentNo}
	if err := h.Store.CreateStudent(c.Request.Context(), &student); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			validationError(c, "userId", "user not found")
		case errors.Is(err, store.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "student_exists"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, student)
}

type checkinInput struct {
	BedID uint `json:"bedId" binding:"required"`
}

// Checkin assigns a bed to a student. The store guarantees a single winner
// when two check-ins race for the same bed.
func (h *Handler) Checkin(c *gin.Context) {
	studentID, ok := idParam(c)
	if !ok {
		return
	}

	var input checkinInput
	if !bindJSON(c, &input) {
		return
	}

	student, err := h.Store.AssignBed(c.Request.Context(), studentID, input.BedID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrBedNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "bed_not_found"})
		case errors.Is(err, store.ErrBedOccupied):
			c.JSON(http.StatusConflict, gin.H{"error": "bed_occupied"})
		case errors.Is(err, store.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "student_not_found"})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, student)
}

// Checkout clears the student's bed reference. Repeating it is a no-op.
func (h *Handler) Checkout(c *gin.Context) {
	studentID, ok := idParam(c)
	if !ok {
		return
	}

	student, err := h.Store.ClearBed(c.Request.Context(), studentID)
	if err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student_not_found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		validationError(c, "id", "must be a numeric id")
		return 0, false
	}
	return uint(id), true
}
