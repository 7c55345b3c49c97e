package api

import (
	"errors"
	"planetary-api/internal/entity"
	"planetary-api/internal/repository"
	"planetary-api/internal/service"
	"strconv"

	"github.com/labstack/echo/v4"
)

type PlanetHandler struct {
	planetService *service.PlanetService
}

// NewPlanetHandler creates a new instance of PlanetHandler
func NewPlanetHandler(planetService *service.PlanetService) *PlanetHandler {
	return &PlanetHandler{planetService: planetService}
}

// GetPlanets lists every planet in the catalog --> GET /planets
func (h *PlanetHandler) GetPlanets(c echo.Context) error {
	planets, err := h.planetService.GetPlanets(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, planets)
}

// GetPlanetByName looks a planet up by name --> GET /get_planet/:planet_name
// A missing planet answers 200 with a message, matching the historic surface.
func (h *PlanetHandler) GetPlanetByName(c echo.Context) error {
	name := c.Param("planet_name")
	planet, err := h.planetService.GetPlanetByName(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(200, map[string]string{"message": "That planet does not exist"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, planet)
}

// GetPlanetDetails looks a planet up by id --> GET /planet_details/:planet_id
func (h *PlanetHandler) GetPlanetDetails(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("planet_id"))
	if err != nil {
		// a non-integer id is a match failure, not a client fault
		return c.JSON(404, map[string]string{"message": "That planet does not exist"})
	}

	planet, err := h.planetService.GetPlanetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(200, map[string]string{"message": "That planet does not exist"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, planet)
}

// AddPlanet creates a planet --> POST /add_planet/ (requires a bearer token)
func (h *PlanetHandler) AddPlanet(c echo.Context) error {
	planet := entity.Planet{}
	if err := c.Bind(&planet); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if planet.PlanetName == "" || planet.PlanetType == "" || planet.HomeStar == "" {
		return c.JSON(400, map[string]string{"message": "planet_name, planet_type and home_star are required"})
	}

	if _, err := h.planetService.CreatePlanet(c.Request().Context(), &planet); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(409, map[string]string{"message": "There is already a planet by that ID"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(201, map[string]string{"message": "You added a planet!"})
}

// UpdatePlanet changes a planet's orbital distance --> PUT /update_planet/
// (requires a bearer token; accepts JSON or form)
func (h *PlanetHandler) UpdatePlanet(c echo.Context) error {
	update := struct {
		PlanetName string  `json:"planet_name" form:"planet_name"`
		Distance   float64 `json:"distance" form:"distance"`
	}{}
	if err := c.Bind(&update); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if update.PlanetName == "" {
		return c.JSON(400, map[string]string{"message": "planet_name is required"})
	}

	if _, err := h.planetService.UpdatePlanetDistance(c.Request().Context(), update.PlanetName, update.Distance); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(200, map[string]string{"message": "That planet does not exist"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "You updated a planet"})
}

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account --> POST /register
func (h *UserHandler) Register(c echo.Context) error {
	user := entity.User{}
	if err := c.Bind(&user); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if user.FirstName == "" || user.LastName == "" || user.Email == "" || user.Password == "" {
		return c.JSON(400, map[string]string{"message": "first_name, last_name, email and password are required"})
	}

	if _, err := h.userService.Register(c.Request().Context(), &user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(409, map[string]string{"message": "This email is already taken"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(201, map[string]string{"message": "New User successfully registered"})
}

// Login checks credentials and hands out a bearer token --> POST /login
// (accepts JSON or form)
func (h *UserHandler) Login(c echo.Context) error {
	login := struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if login.Email == "" || login.Password == "" {
		return c.JSON(400, map[string]string{"message": "email and password are required"})
	}

	token, err := h.userService.Login(c.Request().Context(), login.Email, login.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(401, map[string]string{"message": "Bad email or password"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Login succeeded!", "access_token": token})
}

// RetrievePassword mails a password recovery token --> GET /retrieve-password
func (h *UserHandler) RetrievePassword(c echo.Context) error {
	email := c.FormValue("email")
	if email == "" {
		return c.JSON(400, map[string]string{"message": "email is required"})
	}

	if err := h.userService.RetrievePassword(c.Request().Context(), email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(401, map[string]string{"message": "That email doesn't exist"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "A password recovery message has been sent to " + email})
}

// ResetPassword consumes a recovery token --> POST /reset-password
// (accepts JSON or form)
func (h *UserHandler) ResetPassword(c echo.Context) error {
	reset := struct {
		Email         string `json:"email" form:"email"`
		RecoveryToken string `json:"recovery_token" form:"recovery_token"`
		NewPassword   string `json:"new_password" form:"new_password"`
	}{}
	if err := c.Bind(&reset); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if reset.Email == "" || reset.RecoveryToken == "" || reset.NewPassword == "" {
		return c.JSON(400, map[string]string{"message": "email, recovery_token and new_password are required"})
	}

	err := h.userService.ResetPassword(c.Request().Context(), reset.Email, reset.RecoveryToken, reset.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRecoveryToken) || errors.Is(err, repository.ErrNotFound) {
			return c.JSON(401, map[string]string{"message": "Invalid or expired recovery token"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Your password has been updated"})
}
