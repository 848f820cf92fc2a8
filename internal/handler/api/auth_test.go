//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parkspace/internal/domain/user"
	"parkspace/internal/handler/api"
	resdto "parkspace/internal/handler/dto/response"
	"parkspace/internal/pkg/config"
	"parkspace/internal/pkg/cookie"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"
	"parkspace/tests/common/builder"
	commonhttp "parkspace/tests/common/httptest"
	commandsmock "parkspace/tests/mock/commands"
	queriesmock "parkspace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
	driverID     uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.driverID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.CookieConfig{SameSite: "Lax"}, 24*time.Hour)

	authenticated := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.driverID)
			c.Set("user_role", user.RoleDriver)
			h(c)
		}
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", authenticated(s.handler.Me))
	s.router.POST("/me/vehicles", authenticated(s.handler.RegisterVehicle))
	s.router.GET("/me/vehicles", authenticated(s.handler.ListVehicles))
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthHandlerTestSuite) loginResult() *commands.LoginResult {
	return &commands.LoginResult{
		Token: "signed-token",
		User: &queries.AuthorizedUserView{
			ID:        s.driverID,
			Email:     "driver@example.com",
			Name:      "Test Driver",
			Role:      "DRIVER",
			CreatedAt: time.Now(),
		},
	}
}

func (s *AuthHandlerTestSuite) TestRegister() {
	s.Run("successful registration sets cookie", func() {
		req := builder.NewAuthBuilder().BuildRegisterDTO()
		s.mockCommands.EXPECT().Register(gomock.Any(), req).Return(s.loginResult(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", req, "")

		var resp resdto.LoginResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("signed-token", resp.Token)
		s.Equal("driver@example.com", resp.User.Email)

		c := commonhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("duplicate email", func() {
		req := builder.NewAuthBuilder().BuildRegisterDTO()
		s.mockCommands.EXPECT().Register(gomock.Any(), req).Return(nil, commands.ErrEmailTaken)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", req, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email already registered")
	})

	s.Run("malformed body", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", map[string]any{
			"email": "not-an-email",
		}, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("unknown role rejected by binding", func() {
		req := builder.NewAuthBuilder().With(func(b *builder.AuthBuilder) {
			b.Role = "ADMIN"
		}).BuildRegisterDTO()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/register", req, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("successful login", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()
		s.mockCommands.EXPECT().Login(gomock.Any(), req).Return(s.loginResult(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", req, "")

		var resp resdto.LoginResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("signed-token", resp.Token)
	})

	s.Run("wrong credentials", func() {
		req := builder.NewAuthBuilder().BuildLoginDTO()
		s.mockCommands.EXPECT().Login(gomock.Any(), req).Return(nil, commands.ErrInvalidCredentials)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", req, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, w.Code)

	c := commonhttp.ExtractCookie(w, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("returns current user", func() {
		view := s.loginResult().User
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.driverID).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")

		var resp resdto.UserResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(s.driverID, resp.ID)
		s.Equal("DRIVER", resp.Role)
	})

	s.Run("user no longer exists", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.driverID).Return(nil, queries.ErrUserNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "User not found")
	})
}

func (s *AuthHandlerTestSuite) TestVehicles() {
	s.Run("register vehicle", func() {
		req := builder.NewVehicleRequest()
		view := &queries.VehicleView{ID: uuid.New(), CarNumber: req.CarNumber, CarModel: req.CarModel}
		s.mockCommands.EXPECT().RegisterVehicle(gomock.Any(), gomock.Any(), req).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/me/vehicles", req, "")

		var resp resdto.VehicleResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(req.CarNumber, resp.CarNumber)
	})

	s.Run("list vehicles", func() {
		views := []*queries.VehicleView{
			{ID: uuid.New(), CarNumber: "11AA1111", CarModel: "Model S"},
			{ID: uuid.New(), CarNumber: "22BB2222", CarModel: "Model 3"},
		}
		s.mockQueries.EXPECT().ListVehicles(gomock.Any(), s.driverID).Return(views, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/me/vehicles", nil, "")

		var resp []resdto.VehicleResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
