package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Field-level messages, matching the API's historical wording.
var fieldMessages = map[string]string{
	"name":        "Name must be at least 4 chars",
	"email":       "Invalid email",
	"password":    "Password too short",
	"title":       "Enter a valid title",
	"description": "Enter a valid description",
}

// respondBindError writes a 400 with field-level messages when err comes from
// the binding validator, or a generic error body for malformed JSON.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	out := make([]gin.H, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		msg, ok := fieldMessages[field]
		if !ok {
			msg = fmt.Sprintf("Invalid value for %s", field)
		}
		out = append(out, gin.H{"field": field, "message": msg})
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": out})
}

// respondFieldError writes a 400 for a single field rejected past the binding
// layer (e.g. a value that trims below its minimum length).
func respondFieldError(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{
		{"field": field, "message": fieldMessages[field]},
	}})
}
