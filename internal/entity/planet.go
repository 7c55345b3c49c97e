package entity

type Planet struct {
	PlanetID   int     `json:"planet_id" form:"planet_id"`
	PlanetName string  `json:"planet_name" form:"planet_name"`
	PlanetType string  `json:"planet_type" form:"planet_type"`
	HomeStar   string  `json:"home_star" form:"home_star"`
	Radius     float64 `json:"radius" form:"radius"`
	Mass       float64 `json:"mass" form:"mass"`
	Distance   float64 `json:"distance" form:"distance"`
}

/*
Mysql Schema:
CREATE DATABASE planets;
USE planets;

CREATE TABLE planets (
	planet_id INT AUTO_INCREMENT PRIMARY KEY,
	planet_name VARCHAR(255) NOT NULL,
	planet_type VARCHAR(50) NOT NULL,
	home_star VARCHAR(255) NOT NULL,
	radius DOUBLE NOT NULL,
	mass DOUBLE NOT NULL,
	distance DOUBLE NOT NULL
);
*/
