package domain

import "time"

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// TeamView is a team hydrated with its full member list.
type TeamView struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	CreatedBy int64         `json:"createdBy"`
	CreatedAt time.Time     `json:"createdAt"`
	Members   []UserSummary `json:"members"`
}

type CreateTeamRequest struct {
	Name      string  `json:"name" binding:"required"`
	MemberIDs []int64 `json:"memberIds"`
}

type AddTeamMemberRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}
