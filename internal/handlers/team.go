package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Footy64/api/internal/domain"
)

func (h *Handler) CreateTeam(c *gin.Context) {
	var req domain.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	team, err := h.services.TeamService.CreateTeam(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		h.teamErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusCreated, team)
}

func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.services.TeamService.ListTeams(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		return
	}

	h.successResponse(c, http.StatusOK, teams)
}

func (h *Handler) AddTeamMember(c *gin.Context) {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid team id")
		return
	}

	var req domain.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	team, err := h.services.TeamService.AddMember(c.Request.Context(), teamID, currentUserID(c), req.UserID)
	if err != nil {
		h.teamErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, team)
}

func (h *Handler) RemoveTeamMember(c *gin.Context) {
	teamID, err := pathID(c, "teamId")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid team id")
		return
	}
	memberID, err := pathID(c, "memberId")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "INVALID_INPUT", "invalid member id")
		return
	}

	team, err := h.services.TeamService.RemoveMember(c.Request.Context(), teamID, currentUserID(c), memberID)
	if err != nil {
		h.teamErrorResponse(c, err)
		return
	}

	h.successResponse(c, http.StatusOK, team)
}

func (h *Handler) teamErrorResponse(c *gin.Context, err error) {
	var missingUsers *domain.MissingUsersError
	switch {
	case errors.As(err, &missingUsers):
		h.errorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrTeamNotFound):
		h.errorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrMemberNotInTeam):
		h.errorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrNotTeamMember):
		h.errorResponse(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrEmptyTeamName):
		h.errorResponse(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrAlreadyMember):
		h.errorResponse(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		h.errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
