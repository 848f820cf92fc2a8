//go:build e2e

package space_test

import (
	"fmt"
	"net/http"
	"testing"

	"parkspace/internal/domain/user"
	"parkspace/internal/handler/dto/request"
	"parkspace/internal/handler/dto/response"
	"parkspace/tests/common/dbtest"
	commonhttp "parkspace/tests/common/httptest"
	"parkspace/tests/e2e"
	"parkspace/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	spacesURL   = "/api/spaces"
	mySpacesURL = "/api/me/spaces"
)

type spaceSuite struct {
	e2e.SharedSuite
	jwtHelper *helper.JWTTestHelper
}

func TestSpaceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(spaceSuite))
}

func (s *spaceSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = helper.NewJWTTestHelper(s.Config.JWT)
}

func (s *spaceSuite) seedHost(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()

	hostID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleHost))
	return hostID, s.jwtHelper.TokenFor(t, hostID, user.RoleHost)
}

func (s *spaceSuite) createRequest(title string) request.CreateSpaceRequest {
	return request.CreateSpaceRequest{
		Title:          title,
		Description:    "Near the station east exit",
		Address:        "1-2-3 Teheran-ro",
		Lat:            37.5665,
		Lng:            126.978,
		IsAutoApproval: true,
		Rules: []request.AvailabilityRuleRequest{
			{DayOfWeek: 0, StartTime: "09:00:00", EndTime: "18:00:00"},
			{DayOfWeek: 1, StartTime: "09:00:00", EndTime: "18:00:00"},
		},
		Products: []request.ProductRequest{
			{Type: "HOURLY", Name: "Hourly", Price: 1000},
			{Type: "DAY_PASS", Name: "Day pass", Price: 8000},
		},
	}
}

func (s *spaceSuite) TestCreateSpace() {
	s.Run("host creates a listing with rules and products", func() {
		t := s.T()

		_, hostToken := s.seedHost(t, "create.host@example.com")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, spacesURL, s.createRequest("East Lot"), hostToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.SpaceDetailResponse
		commonhttp.DecodeResponseBody(t, w.Body, &created)
		require.Equal(t, "East Lot", created.Title)
		require.True(t, created.IsActive)
		require.Len(t, created.Rules, 2)
		require.Len(t, created.Products, 2)
		for _, p := range created.Products {
			require.True(t, p.IsActive)
			require.NotEqual(t, uuid.Nil, p.ID)
		}
	})

	s.Run("driver cannot create a listing", func() {
		t := s.T()

		driverID := dbtest.CreateTestUser(t, s.DB, "nohost@example.com", string(user.RoleDriver))
		token := s.jwtHelper.TokenFor(t, driverID, user.RoleDriver)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, spacesURL, s.createRequest("Drive Lot"), token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("inverted rule window is rejected", func() {
		t := s.T()

		_, hostToken := s.seedHost(t, "badrule.host@example.com")

		req := s.createRequest("Bad Rule Lot")
		req.Rules = []request.AvailabilityRuleRequest{
			{DayOfWeek: 0, StartTime: "18:00:00", EndTime: "09:00:00"},
		}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, spacesURL, req, hostToken)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *spaceSuite) TestListSpaces() {
	s.Run("public listing shows active spaces with the lowest price", func() {
		t := s.T()

		hostID, _ := s.seedHost(t, "list.host@example.com")
		activeID := dbtest.CreateTestSpace(t, s.DB, hostID, "Visible Lot", true)
		dbtest.CreateTestProduct(t, s.DB, activeID, "HOURLY", 1000)
		dbtest.CreateTestProduct(t, s.DB, activeID, "DAY_PASS", 8000)

		inactiveID := dbtest.CreateTestSpace(t, s.DB, hostID, "Hidden Lot", true)
		_, err := s.DB.Exec(t.Context(), "UPDATE spaces SET is_active = false WHERE id = $1", inactiveID)
		require.NoError(t, err)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, spacesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.SpaceListResponse
		commonhttp.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 1)
		require.Equal(t, activeID, items[0].ID)
		require.NotNil(t, items[0].MinPrice)
		require.Equal(t, int64(1000), *items[0].MinPrice)
	})
}

func (s *spaceSuite) TestGetSpace() {
	s.Run("detail is public for active spaces", func() {
		t := s.T()

		hostID, _ := s.seedHost(t, "detail.host@example.com")
		spaceID := dbtest.CreateTestSpace(t, s.DB, hostID, "Detail Lot", true)
		dbtest.CreateTestRule(t, s.DB, spaceID, 0, "09:00:00", "18:00:00")
		dbtest.CreateTestProduct(t, s.DB, spaceID, "HOURLY", 1000)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", spacesURL, spaceID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var detail response.SpaceDetailResponse
		commonhttp.DecodeResponseBody(t, w.Body, &detail)
		require.Equal(t, spaceID, detail.ID)
		require.Len(t, detail.Rules, 1)
		require.Len(t, detail.Products, 1)
	})

	s.Run("inactive space detail is hidden from the public", func() {
		t := s.T()

		hostID, _ := s.seedHost(t, "hiddendetail.host@example.com")
		spaceID := dbtest.CreateTestSpace(t, s.DB, hostID, "Gone Lot", true)
		_, err := s.DB.Exec(t.Context(), "UPDATE spaces SET is_active = false WHERE id = $1", spaceID)
		require.NoError(t, err)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%s", spacesURL, spaceID), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *spaceSuite) TestUpdateSpace() {
	s.Run("owner replaces rules and reconciles products", func() {
		t := s.T()

		_, hostToken := s.seedHost(t, "update.host@example.com")

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, spacesURL, s.createRequest("Update Lot"), hostToken)
		require.Equal(t, http.StatusCreated, w.Code)
		var created response.SpaceDetailResponse
		commonhttp.DecodeResponseBody(t, w.Body, &created)

		var hourlyID uuid.UUID
		for _, p := range created.Products {
			if p.Type == "HOURLY" {
				hourlyID = p.ID
			}
		}
		require.NotEqual(t, uuid.Nil, hourlyID)

		update := request.UpdateSpaceRequest{
			Title:          "Update Lot v2",
			Description:    created.Description,
			Address:        created.Address,
			Lat:            created.Lat,
			Lng:            created.Lng,
			IsAutoApproval: false,
			Rules: []request.AvailabilityRuleRequest{
				{DayOfWeek: 5, StartTime: "08:00:00", EndTime: "20:00:00"},
			},
			Products: []request.ProductRequest{
				{ID: &hourlyID, Type: "HOURLY", Name: "Hourly", Price: 1500},
			},
		}
		w = commonhttp.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", spacesURL, created.ID), update, hostToken)
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.SpaceDetailResponse
		commonhttp.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, "Update Lot v2", updated.Title)
		require.False(t, updated.IsAutoApproval)
		require.Len(t, updated.Rules, 1)
		require.Equal(t, 5, updated.Rules[0].DayOfWeek)

		// The day pass was dropped from the request, so it must come back
		// deactivated rather than deleted.
		byType := map[string]response.ProductResponse{}
		for _, p := range updated.Products {
			byType[p.Type] = p
		}
		require.Equal(t, int64(1500), byType["HOURLY"].Price)
		require.True(t, byType["HOURLY"].IsActive)
		require.False(t, byType["DAY_PASS"].IsActive)
	})

	s.Run("another host cannot update the listing", func() {
		t := s.T()

		hostID, _ := s.seedHost(t, "owner.host@example.com")
		spaceID := dbtest.CreateTestSpace(t, s.DB, hostID, "Owned Lot", true)
		_, otherToken := s.seedHost(t, "intruder.host@example.com")

		update := request.UpdateSpaceRequest(s.createRequest("Stolen Lot"))
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%s", spacesURL, spaceID), update, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *spaceSuite) TestListMySpaces() {
	s.Run("host sees own listings including inactive ones", func() {
		t := s.T()

		hostID, hostToken := s.seedHost(t, "mine.host@example.com")
		otherID, _ := s.seedHost(t, "other.host@example.com")

		activeID := dbtest.CreateTestSpace(t, s.DB, hostID, "Mine Active", true)
		inactiveID := dbtest.CreateTestSpace(t, s.DB, hostID, "Mine Inactive", true)
		_, err := s.DB.Exec(t.Context(), "UPDATE spaces SET is_active = false WHERE id = $1", inactiveID)
		require.NoError(t, err)
		dbtest.CreateTestSpace(t, s.DB, otherID, "Not Mine", true)

		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, mySpacesURL, nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code)

		var items []response.SpaceListResponse
		commonhttp.DecodeResponseBody(t, w.Body, &items)
		require.Len(t, items, 2)
		ids := []uuid.UUID{items[0].ID, items[1].ID}
		require.ElementsMatch(t, []uuid.UUID{activeID, inactiveID}, ids)
	})
}
