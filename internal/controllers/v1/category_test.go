package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/test"
)

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.UserID == uuid.Nil {
		c.UserID = createTestUser(t, v1.UserEditable{Name: "Test user"}).Data.ID
	}

	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var category v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &category)

	if r.Code == http.StatusCreated {
		return category.Data[0]
	}

	return v1.CategoryResponse{}
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Note: "Food only"})

	suite.Assert().Equal("Groceries", category.Data.Name)
	suite.Assert().Equal("Food only", category.Data.Note)
	suite.Assert().Contains(category.Data.Links.Self, fmt.Sprintf("/v1/categories/%s", category.Data.ID))
}

func (suite *TestSuiteStandard) TestCategoriesCreateUnknownUser() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{
		UserID: uuid.New(),
		Name:   "Orphan",
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesCreateDuplicateName() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Twice"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{
		UserID: category.Data.UserID,
		Name:   "Twice",
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Data[0].Error, "already have a category with this name")
}

func (suite *TestSuiteStandard) TestCategoriesGet() {
	created := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Get me"})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	suite.Assert().Equal("Get me", category.Data.Name)
}

func (suite *TestSuiteStandard) TestCategoriesList() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Sorted categories"})

	for _, name := range []string{"Transport", "Food", "Leisure"} {
		createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: name})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)

	// Categories are sorted by name
	suite.Assert().Equal("Food", response.Data[0].Name)
	suite.Assert().Equal("Leisure", response.Data[1].Name)
	suite.Assert().Equal("Transport", response.Data[2].Name)
}

func (suite *TestSuiteStandard) TestCategoriesListFilterUser() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Mine"})
	createTestCategory(suite.T(), v1.CategoryEditable{Name: "Someone else's"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?user=%s", category.Data.UserID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestCategoriesListFilterSearch() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Search"})

	createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Restaurants", Note: "Eating out"})
	createTestCategory(suite.T(), v1.CategoryEditable{UserID: user.Data.ID, Name: "Rent"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories?search=eating", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Restaurants", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	created := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"note": "Updated note",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var category v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &category)
	suite.Assert().Equal("Before", category.Data.Name)
	suite.Assert().Equal("Updated note", category.Data.Note)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	created := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Delete me"})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
