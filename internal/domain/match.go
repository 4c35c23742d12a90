package domain

import "time"

type Match struct {
	ID         int64     `json:"id"`
	HomeTeamID int64     `json:"homeTeamId"`
	AwayTeamID int64     `json:"awayTeamId"`
	MatchDate  time.Time `json:"matchDate"`
	Place      string    `json:"place"`
	CreatedBy  int64     `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	HomeScore  *int      `json:"homeScore"`
	AwayScore  *int      `json:"awayScore"`
}

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Score fields stay null until the result is recorded.
type Score struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// MatchView is a match hydrated with the names of both participant teams.
type MatchView struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Place     string    `json:"place"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	HomeTeam  TeamRef   `json:"homeTeam"`
	AwayTeam  TeamRef   `json:"awayTeam"`
	Score     Score     `json:"score"`
}

type CreateMatchRequest struct {
	HomeTeamID int64  `json:"homeTeamId" binding:"required"`
	AwayTeamID int64  `json:"awayTeamId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Place      string `json:"place" binding:"required"`
}

type UpdateScoreRequest struct {
	HomeScore *int `json:"homeScore" binding:"required,gte=0"`
	AwayScore *int `json:"awayScore" binding:"required,gte=0"`
}
