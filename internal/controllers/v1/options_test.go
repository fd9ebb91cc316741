package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/spendwise/backend/internal/controllers/v1"
	"github.com/spendwise/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1/users", "OPTIONS, GET, POST"},
		{"http://example.com/v1/teams", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budgets/overview", "OPTIONS, GET"},
		{"http://example.com/v1/budgets/analytics", "OPTIONS, GET"},
		{"http://example.com/v1/budgets/alerts", "OPTIONS, GET"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/match-rules", "OPTIONS, GET, POST"},
		{"http://example.com/v1/notifications", "OPTIONS, GET, POST"},
		{"http://example.com/v1/notifications/check-alerts", "OPTIONS, POST"},
		{"http://example.com/v1/dashboard", "OPTIONS, GET"},
		{"http://example.com/v1/reports/expenses", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetail() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Options"})

	r := test.Request(suite.T(), http.MethodOptions, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsDetailNotFound() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/users/5499cdfb-0e41-4888-a7c9-9e6b4e1c7eb1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
