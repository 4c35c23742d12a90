package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Footy64/api/internal/domain"
)

func (h *Handler) CreateMatch(c *gin.Context) {
	var req domain.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	match, err := h.services.MatchService.CreateMatch(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.matchErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, match)
}

func (h *Handler) ListMatches(c *gin.Context) {
	matches, err := h.services.MatchService.ListMatches(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	h.successResponse(c, http.StatusOK, matches)
}

func (h *Handler) UpdateScore(c *gin.Context) {
	matchID, err := pathID(c, "matchId")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid match id")
		return
	}

	var req domain.UpdateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	match, err := h.services.MatchService.UpdateScore(c.Request.Context(), matchID, currentUserID(c), *req.HomeScore, *req.AwayScore)
	if err != nil {
		h.matchErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, match)
}

func (h *Handler) matchErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTeamNotFound), errors.Is(err, domain.ErrMatchNotFound):
		h.errorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrNotParticipant):
		h.errorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrSameTeam),
		errors.Is(err, domain.ErrInvalidMatchDate),
		errors.Is(err, domain.ErrEmptyPlace):
		h.errorResponse(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
