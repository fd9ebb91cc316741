package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise/backend/internal/httputil"
	"github.com/spendwise/backend/internal/models"
	sw_uuid "github.com/spendwise/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// RegisterTeamRoutes registers the routes for Teams with
// the RouterGroup that is passed.
func RegisterTeamRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTeamList)
		r.GET("", GetTeams)
		r.POST("", CreateTeams)
	}

	// Team with ID
	{
		r.OPTIONS("/:id", OptionsTeamDetail)
		r.GET("/:id", GetTeam)
		r.PATCH("/:id", UpdateTeam)
		r.DELETE("/:id", DeleteTeam)
	}

	// Memberships of a team
	{
		r.OPTIONS("/:id/memberships", OptionsTeamMembershipList)
		r.GET("/:id/memberships", GetTeamMemberships)
		r.POST("/:id/memberships", CreateTeamMemberships)
		r.DELETE("/:id/memberships/:membershipId", DeleteTeamMembership)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Router			/v1/teams [options]
func OptionsTeamList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [options]
func OptionsTeamDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Team{})
}

// @Summary		Create teams
// @Description	Creates new teams
// @Tags			Teams
// @Accept			json
// @Produce		json
// @Success		201		{object}	TeamCreateResponse
// @Failure		400		{object}	TeamCreateResponse
// @Failure		500		{object}	TeamCreateResponse
// @Param			teams	body		[]TeamEditable	true	"Teams"
// @Router			/v1/teams [post]
func CreateTeams(c *gin.Context) {
	var teams []TeamEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &teams)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TeamCreateResponse{}

	for _, editable := range teams {
		team := editable.model()

		err := models.DB.Create(&team).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTeam(c, team)
		r.Data = append(r.Data, TeamResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List teams
// @Description	Returns a list of teams
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamListResponse
// @Failure		400	{object}	TeamListResponse
// @Failure		500	{object}	TeamListResponse
// @Router			/v1/teams [get]
// @Param			name	query	string	false	"Filter by name"
// @Param			note	query	string	false	"Filter by note"
// @Param			search	query	string	false	"Search for this text in name and note"
// @Param			offset	query	uint	false	"The offset of the first Team returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Teams to return. Defaults to 50."
func GetTeams(c *gin.Context) {
	var filter TeamQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.Order("name ASC")
	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Teams and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var teams []models.Team
	err := q.Find(&teams).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TeamListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Team, 0)
	for _, team := range teams {
		apiResources = append(apiResources, newTeam(c, team))
	}

	c.JSON(http.StatusOK, TeamListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get team
// @Description	Returns a specific team
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamResponse
// @Failure		400	{object}	TeamResponse
// @Failure		404	{object}	TeamResponse
// @Failure		500	{object}	TeamResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [get]
func GetTeam(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	var team models.Team
	err = models.DB.First(&team, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTeam(c, team)
	c.JSON(http.StatusOK, TeamResponse{Data: &apiResource})
}

// @Summary		Update team
// @Description	Update an existing team. Only values to be updated need to be specified.
// @Tags			Teams
// @Accept			json
// @Produce		json
// @Success		200		{object}	TeamResponse
// @Failure		400		{object}	TeamResponse
// @Failure		404		{object}	TeamResponse
// @Failure		500		{object}	TeamResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			team	body		TeamEditable	true	"Team"
// @Router			/v1/teams/{id} [patch]
func UpdateTeam(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	var team models.Team
	err = models.DB.First(&team, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TeamEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	var data TeamEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&team).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTeam(c, team)
	c.JSON(http.StatusOK, TeamResponse{Data: &apiResource})
}

// @Summary		Delete team
// @Description	Deletes a team
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id} [delete]
func DeleteTeam(c *gin.Context) {
	deleteResource[models.Team](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Teams
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id}/memberships [options]
func OptionsTeamMembershipList(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Team{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		List team memberships
// @Description	Returns the memberships of a team
// @Tags			Teams
// @Produce		json
// @Success		200	{object}	TeamMembershipListResponse
// @Failure		400	{object}	TeamMembershipListResponse
// @Failure		404	{object}	TeamMembershipListResponse
// @Failure		500	{object}	TeamMembershipListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/teams/{id}/memberships [get]
func GetTeamMemberships(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamMembershipListResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Team{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamMembershipListResponse{
			Error: &s,
		})
		return
	}

	var memberships []models.TeamMembership
	err = models.DB.
		Where(&models.TeamMembership{TeamID: uri.ID.UUID}).
		Order("created_at ASC").
		Find(&memberships).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamMembershipListResponse{
			Error: &s,
		})
		return
	}

	apiResources := make([]TeamMembership, 0)
	for _, membership := range memberships {
		apiResources = append(apiResources, newTeamMembership(membership))
	}

	c.JSON(http.StatusOK, TeamMembershipListResponse{Data: apiResources})
}

// @Summary		Create team memberships
// @Description	Adds users to a team
// @Tags			Teams
// @Accept			json
// @Produce		json
// @Success		201			{object}	TeamMembershipCreateResponse
// @Failure		400			{object}	TeamMembershipCreateResponse
// @Failure		404			{object}	TeamMembershipCreateResponse
// @Failure		500			{object}	TeamMembershipCreateResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			memberships	body		[]TeamMembershipEditable	true	"Memberships"
// @Router			/v1/teams/{id}/memberships [post]
func CreateTeamMemberships(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamMembershipCreateResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Team{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamMembershipCreateResponse{
			Error: &s,
		})
		return
	}

	var memberships []TeamMembershipEditable
	err = httputil.BindData(c, &memberships)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TeamMembershipCreateResponse{
			Error: &s,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TeamMembershipCreateResponse{}

	for _, editable := range memberships {
		// Verify that the referenced user exists
		err := models.DB.First(&models.User{}, editable.UserID).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		membership := editable.model(uri.ID.UUID)

		err = models.DB.Create(&membership).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTeamMembership(membership)
		r.Data = append(r.Data, TeamMembershipResponse{Data: &data})
	}

	c.JSON(status, r)
}

type teamMembershipURI struct {
	ID           sw_uuid.UUID `uri:"id" binding:"required"`           // The ID of the team
	MembershipID sw_uuid.UUID `uri:"membershipId" binding:"required"` // The ID of the membership
}

// @Summary		Delete team membership
// @Description	Removes a user from a team
// @Tags			Teams
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		string	true	"ID of the team"
// @Param			membershipId	path		string	true	"ID of the membership"
// @Router			/v1/teams/{id}/memberships/{membershipId} [delete]
func DeleteTeamMembership(c *gin.Context) {
	var uri teamMembershipURI
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var membership models.TeamMembership
	err = models.DB.
		Where(&models.TeamMembership{TeamID: uri.ID.UUID}).
		First(&membership, uri.MembershipID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&membership).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
