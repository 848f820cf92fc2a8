package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkspace/internal/domain/user"
	"parkspace/internal/handler/api"
	"parkspace/internal/handler/middleware"
	"parkspace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	spaceHandler *api.SpaceHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, spaceHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	spaceHandler *api.SpaceHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			vehicles := me.Group("/vehicles")
			vehicles.Use(authMiddleware.RequireRole(user.RoleDriver))
			addRoutes(vehicles, []route{
				{Method: http.MethodPost, Path: "", Handler: authHandler.RegisterVehicle},
				{Method: http.MethodGet, Path: "", Handler: authHandler.ListVehicles},
			})

			mySpaces := me.Group("/spaces")
			mySpaces.Use(authMiddleware.RequireRole(user.RoleHost))
			addRoutes(mySpaces, []route{
				{Method: http.MethodGet, Path: "", Handler: spaceHandler.ListMySpaces},
			})
		}

		spaces := apiGroup.Group("/spaces")
		{
			addRoutes(spaces, []route{
				{Method: http.MethodGet, Path: "", Handler: spaceHandler.ListSpaces},
				{Method: http.MethodGet, Path: "/:id", Handler: spaceHandler.GetSpace},
			})

			hostRequired := spaces.Group("")
			hostRequired.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleHost))
			addRoutes(hostRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: spaceHandler.CreateSpace},
				{Method: http.MethodPut, Path: "/:id", Handler: spaceHandler.UpdateSpace},
				{Method: http.MethodDelete, Path: "/:id", Handler: spaceHandler.DeactivateSpace},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.ConfirmReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.RejectReservation},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: reservationHandler.ApprovePayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
