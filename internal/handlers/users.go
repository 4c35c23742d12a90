package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	searchQueryMinLen = 2
	searchQueryMaxLen = 64
)

func (h *Handler) SearchUsers(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if n := utf8.RuneCountInString(query); n < searchQueryMinLen || n > searchQueryMaxLen {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "query must be between 2 and 64 characters")
		return
	}

	users, err := h.services.UserService.Search(c.Request.Context(), query)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	h.successResponse(c, http.StatusOK, users)
}
