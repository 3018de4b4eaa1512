package router

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"

	"devconnector/internal/auth"
	"devconnector/internal/config"
	"devconnector/internal/handler"
	"devconnector/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users repository.UserRepository,
	userHandler *handler.UserHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(20),
			Burst:     60,
			ExpiresIn: 3 * time.Minute,
		},
	)))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/users/register", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/profile/all", profileHandler.All)
	api.GET("/profile/handle/:handle", profileHandler.ByHandle)
	api.GET("/profile/user/:userId", profileHandler.ByUserID)
	api.GET("/posts", postHandler.All)
	api.GET("/posts/:id", postHandler.ByID)

	// Secured routes (require JWT authentication and a live user record)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}), resolveUser(users))

	secured.GET("/users/current", userHandler.Current)

	secured.GET("/profile", profileHandler.Current)
	secured.POST("/profile", profileHandler.CreateOrUpdate)
	secured.POST("/profile/experience", profileHandler.AddExperience)
	secured.POST("/profile/education", profileHandler.AddEducation)
	secured.DELETE("/profile/experience/:expId", profileHandler.DeleteExperience)
	secured.DELETE("/profile/education/:eduId", profileHandler.DeleteEducation)
	secured.DELETE("/profile", profileHandler.DeleteAccount)

	secured.POST("/posts", postHandler.Create)
	secured.DELETE("/posts/:id", postHandler.Delete)
	secured.POST("/posts/like/:id", postHandler.Like)
	secured.POST("/posts/unlike/:id", postHandler.Unlike)
	secured.POST("/posts/comment/:id", postHandler.Comment)
	secured.DELETE("/posts/comment/:id/:commentId", postHandler.DeleteComment)
}

// resolveUser loads the live user record for the verified token's id. A token
// whose user no longer exists is treated as unauthenticated.
func resolveUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			id, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
			}

			c.Set(auth.ContextUserKey, user)
			return next(c)
		}
	}
}
