package domain

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTeamNotFound       = errors.New("team not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrEmptyTeamName      = errors.New("team name cannot be empty")
	ErrNotTeamMember      = errors.New("you are not a member of this team")
	ErrAlreadyMember      = errors.New("user already in team")
	ErrMemberNotInTeam    = errors.New("member not in team")
	ErrSameTeam           = errors.New("match must be between different teams")
	ErrNotParticipant     = errors.New("you must be a member of one of the teams")
	ErrInvalidMatchDate   = errors.New("invalid match date")
	ErrEmptyPlace         = errors.New("match place cannot be empty")
)

// MissingUsersError lists referenced user ids that do not exist.
type MissingUsersError struct {
	IDs []int64
}

func (e *MissingUsersError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return "users not found: " + strings.Join(parts, ", ")
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
