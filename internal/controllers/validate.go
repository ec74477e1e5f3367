package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type fieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// bindJSON parses the request body into dst and, on failure, writes the
// uniform validation_error response. Returns false when the request was
// rejected.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"details": fieldIssues(err),
		})
		return false
	}
	return true
}

func fieldIssues(err error) []fieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Malformed JSON or a type mismatch before validation ran.
		return []fieldIssue{{Field: "body", Message: err.Error()}}
	}

	issues := make([]fieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, fieldIssue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return issues
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validationError rejects a request with a single hand-built field issue,
// used where the problem is only visible after a database lookup.
func validationError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "validation_error",
		"details": []fieldIssue{{Field: field, Message: message}},
	})
}

// serverError logs the fault and returns the opaque 500 body; no detail
// leaks to the caller.
func serverError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.FullPath()).Error("internal error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
}
