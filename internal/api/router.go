package api

import (
	"planetary-api/internal/service"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter maps every route to its handler. The two mutating catalog routes
// are wrapped with the JWT guard; everything else is public.
func NewRouter(planetHandler *PlanetHandler, userHandler *UserHandler, jwtSecret string) *echo.Echo {
	e := echo.New()

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// missing and malformed tokens are both unauthorized, not bad requests
	requireAuth := echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.JwtCustomClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(401, map[string]string{"message": "Unauthorized"})
		},
	})

	e.GET("/", Home)
	e.GET("/home", NewHome)
	e.GET("/jsonify", JSONMessage)
	e.GET("/parameters", Parameters)
	e.GET("/url/:param1/:param2", URLParameters)

	e.GET("/planets", planetHandler.GetPlanets)
	e.GET("/get_planet/:planet_name", planetHandler.GetPlanetByName)
	e.GET("/planet_details/:planet_id", planetHandler.GetPlanetDetails)
	e.POST("/add_planet/", planetHandler.AddPlanet, requireAuth)
	e.PUT("/update_planet/", planetHandler.UpdatePlanet, requireAuth)

	e.POST("/register", userHandler.Register)
	e.POST("/login", userHandler.Login)
	e.GET("/retrieve-password", userHandler.RetrievePassword)
	e.POST("/reset-password", userHandler.ResetPassword)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "planetary-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return e
}
