package migrations

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func createTable(db *sql.DB, query string, retries int) error {
	_, err := db.Exec(query)
	for i := 0; err != nil && i < retries; i++ {
		time.Sleep(1 * time.Second)
		_, err = db.Exec(query)
	}
	return err
}

// AutoMigratePlanets creates the planets table if it does not exist.
func AutoMigratePlanets(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS planets (
			planet_id INT AUTO_INCREMENT PRIMARY KEY,
			planet_name VARCHAR(255) NOT NULL,
			planet_type VARCHAR(50) NOT NULL,
			home_star VARCHAR(255) NOT NULL,
			radius DOUBLE NOT NULL,
			mass DOUBLE NOT NULL,
			distance DOUBLE NOT NULL
		);
	`
	return createTable(db, query, retries)
}

// AutoMigrateUsers creates the users table if it does not exist.
func AutoMigrateUsers(retries int, db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			username VARCHAR(100) UNIQUE
		);
	`
	return createTable(db, query, retries)
}

// SeedDatabase inserts the starter catalog and the test account. Rows are
// keyed on planet_id and email, so reseeding is a no-op.
func SeedDatabase(db *sql.DB) error {
	planets := []struct {
		id                     int
		name, planetType, star string
		radius, mass, distance float64
	}{
		{1, "Mercury", "Class D", "Sol", 1516, 2.258e23, 35.98e6},
		{2, "Venus", "Class K", "Sol", 3760, 4.867e24, 67.24e6},
		{3, "Earth", "Class M", "Sol", 3959, 5.972e24, 92.96e6},
	}

	query := `INSERT IGNORE INTO planets (planet_id, planet_name, planet_type, home_star, radius, mass, distance) VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range planets {
		if _, err := db.Exec(query, p.id, p.name, p.planetType, p.star, p.radius, p.mass, p.distance); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("P@ssw0rd"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userQuery := `INSERT IGNORE INTO users (first_name, last_name, email, password) VALUES (?, ?, ?, ?)`
	_, err = db.Exec(userQuery, "William", "Herschel", "test@test.com", string(hashed))
	return err
}
