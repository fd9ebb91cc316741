package models_test

import (
	"github.com/spendwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestUserEmailNormalization() {
	user := suite.createTestUser(models.User{
		Name:  "  Morre  ",
		Email: "  Morre@Example.COM ",
	})

	suite.Assert().Equal("Morre", user.Name)
	suite.Assert().Equal("morre@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.createTestUser(models.User{Name: "First", Email: "same@example.com"})

	err := models.DB.Create(&models.User{Name: "Second", Email: "same@example.com"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserEmailNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	user := suite.createTestUser(models.User{Name: "Unique categories"})
	other := suite.createTestUser(models.User{Name: "Other user"})

	suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})

	err := models.DB.Create(&models.Category{UserID: user.ID, Name: "Food"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another user
	err = models.DB.Create(&models.Category{UserID: other.ID, Name: "Food"}).Error
	suite.Assert().Nil(err)
}

func (suite *TestSuiteStandard) TestTeamNameUnique() {
	suite.createTestTeam(models.Team{Name: "Household"})

	err := models.DB.Create(&models.Team{Name: "Household"}).Error
	suite.Assert().ErrorIs(err, models.ErrTeamNameNotUnique)
}

func (suite *TestSuiteStandard) TestTeamMembershipUnique() {
	user := suite.createTestUser(models.User{Name: "Member"})
	team := suite.createTestTeam(models.Team{Name: "Uniques"})

	suite.createTestTeamMembership(models.TeamMembership{TeamID: team.ID, UserID: user.ID})

	err := models.DB.Create(&models.TeamMembership{TeamID: team.ID, UserID: user.ID}).Error
	suite.Assert().ErrorIs(err, models.ErrTeamMemberNotUnique)
}

func (suite *TestSuiteStandard) TestTeamMembershipDefaultRole() {
	user := suite.createTestUser(models.User{Name: "Role"})
	team := suite.createTestTeam(models.Team{Name: "Role team"})

	membership := suite.createTestTeamMembership(models.TeamMembership{TeamID: team.ID, UserID: user.ID})

	var reloaded models.TeamMembership
	err := models.DB.First(&reloaded, membership.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("member", reloaded.Role)
}
