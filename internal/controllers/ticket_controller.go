package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dormhub/internal/middleware"
	"dormhub/internal/models"
	"dormhub/internal/store"
)

// ListTickets returns tickets newest-first. Students only ever see their own;
// admin and dorm manager see everything.
func (h *Handler) ListTickets(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var scope *uint
	if ident.Role == models.RoleStudent {
		userID := ident.UserID
		scope = &userID
	}

	tickets, err := h.Store.ListTickets(c.Request.Context(), scope)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

type createTicketInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateTicket files a maintenance request owned by the caller.
func (h *Handler) CreateTicket(c *gin.Context) {
	ident, ok := middleware.Identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input createTicketInput
	if !bindJSON(c, &input) {
		return
	}

	ticket := models.Ticket{
		UserID:      ident.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TicketOpen,
	}
	if err := h.Store.CreateTicket(c.Request.Context(), &ticket); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

type updateTicketInput struct {
	Status models.TicketStatus `json:"status" binding:"required"`
}

// UpdateTicket sets the ticket status. The status set is closed but the
// transitions are not: any status may follow any other.
func (h *Handler) UpdateTicket(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var input updateTicketInput
	if !bindJSON(c, &input) {
		return
	}
	if !input.Status.Valid() {
		validationError(c, "status", "must be one of open, in_progress, resolved, closed")
		return
	}

	ticket, err := h.Store.UpdateTicketStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ticket_not_found"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
