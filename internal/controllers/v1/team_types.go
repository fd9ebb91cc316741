package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spendwise/backend/internal/models"
)

type TeamEditable struct {
	Name string `json:"name" example:"Household"`            // Name of the team, unique across all teams
	Note string `json:"note" example:"Everyone in the flat"` // Notes about the team
}

// model returns the database resource for the editable fields
func (editable TeamEditable) model() models.Team {
	return models.Team{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type TeamLinks struct {
	Self        string `json:"self" example:"https://example.com/api/v1/teams/3fa85f64-5717-4562-b3fc-2c963f66afa6"`           // The team itself
	Memberships string `json:"memberships" example:"https://example.com/api/v1/teams/3fa85f64-5717-4562-b3fc-.../memberships"` // Memberships of the team
}

// Team is the API v1 representation of a Team.
type Team struct {
	models.DefaultModel
	TeamEditable
	Links TeamLinks `json:"links"`
}

func newTeam(c *gin.Context, model models.Team) Team {
	url := c.GetString(string(models.DBContextURL))

	return Team{
		DefaultModel: model.DefaultModel,
		TeamEditable: TeamEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: TeamLinks{
			Self:        fmt.Sprintf("%s/v1/teams/%s", url, model.ID),
			Memberships: fmt.Sprintf("%s/v1/teams/%s/memberships", url, model.ID),
		},
	}
}

type TeamListResponse struct {
	Data       []Team      `json:"data"`                                                          // List of teams
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TeamCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TeamResponse `json:"data"`                                                          // List of created Teams
}

func (t *TeamCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TeamResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TeamResponse struct {
	Data  *Team   `json:"data"`                                                          // Data for the team
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this team
}

type TeamQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name. Fuzzy filtered
	Note   string `form:"note" filterField:"false"`   // By note. Fuzzy filtered
	Search string `form:"search" filterField:"false"` // By string in name or note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Team returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Teams to return. Defaults to 50.
}

type TeamMembershipEditable struct {
	UserID uuid.UUID `json:"userId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the user to add to the team
	Role   string    `json:"role" example:"member" default:"member"`                // Role of the user within the team
}

// model returns the database resource for the editable fields
func (editable TeamMembershipEditable) model(teamID uuid.UUID) models.TeamMembership {
	return models.TeamMembership{
		TeamID: teamID,
		UserID: editable.UserID,
		Role:   editable.Role,
	}
}

// TeamMembership is the API v1 representation of a TeamMembership.
type TeamMembership struct {
	models.DefaultModel
	TeamID uuid.UUID `json:"teamId" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"` // ID of the team
	TeamMembershipEditable
}

func newTeamMembership(model models.TeamMembership) TeamMembership {
	return TeamMembership{
		DefaultModel: model.DefaultModel,
		TeamID:       model.TeamID,
		TeamMembershipEditable: TeamMembershipEditable{
			UserID: model.UserID,
			Role:   model.Role,
		},
	}
}

type TeamMembershipListResponse struct {
	Data  []TeamMembership `json:"data"`                                                          // List of memberships
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TeamMembershipCreateResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TeamMembershipResponse `json:"data"`                                                          // List of created memberships
}

func (t *TeamMembershipCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TeamMembershipResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TeamMembershipResponse struct {
	Data  *TeamMembership `json:"data"`                                                          // Data for the membership
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this membership
}
