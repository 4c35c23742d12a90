package service

import (
	"github.com/Footy64/api/internal/service/auth"
	"github.com/Footy64/api/internal/service/match"
	"github.com/Footy64/api/internal/service/team"
	"github.com/Footy64/api/internal/service/user"
)

type Services struct {
	AuthService  *auth.AuthService
	TeamService  *team.TeamService
	MatchService *match.MatchService
	UserService  *user.UserService
}
