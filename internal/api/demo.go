package api

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Home --> GET /
func Home(c echo.Context) error {
	return c.String(200, "Home")
}

// NewHome --> GET /home
func NewHome(c echo.Context) error {
	return c.String(200, "This is the new home page.")
}

// JSONMessage --> GET /jsonify
func JSONMessage(c echo.Context) error {
	return c.JSON(200, map[string]string{"message": "This is a JSON message."})
}

// Parameters reads name and age from the query string --> GET /parameters
func Parameters(c echo.Context) error {
	name := c.QueryParam("name")
	age, err := strconv.Atoi(c.QueryParam("age"))
	if err != nil {
		return c.JSON(404, map[string]string{"message": "age must be an integer"})
	}

	if age < 18 {
		return c.JSON(401, map[string]string{"message": name + " is not old enough for access"})
	}
	return c.JSON(200, map[string]string{"message": "Message"})
}

// URLParameters matches typed path segments --> GET /url/:param1/:param2
func URLParameters(c echo.Context) error {
	param1 := c.Param("param1")
	param2, err := strconv.Atoi(c.Param("param2"))
	if err != nil {
		return c.JSON(404, map[string]string{"message": "Not found"})
	}

	switch {
	case param2 == 18:
		return c.JSON(200, map[string]string{"message": "You got lucky " + param1 + ", you just turned 18"})
	case param2 < 18:
		return c.JSON(200, map[string]string{"message": "Begone heathen! You are not old enough"})
	default:
		return c.JSON(200, map[string]string{"message": "Drinks on me"})
	}
}
