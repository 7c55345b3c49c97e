package repository

import (
	"context"
	"database/sql"
	"errors"
	"planetary-api/internal/entity"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("duplicate record")
)

// translateErr maps driver errors onto the repository sentinels.
func translateErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrConflict
	}
	return err
}

type PlanetRepository struct {
	db *sql.DB
}

func NewPlanetRepository(db *sql.DB) *PlanetRepository {
	return &PlanetRepository{db}
}

func (r *PlanetRepository) GetPlanets(ctx context.Context) ([]*entity.Planet, error) {
	query := `SELECT planet_id, planet_name, planet_type, home_star, radius, mass, distance FROM planets`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	planets := []*entity.Planet{}
	for rows.Next() {
		var planet entity.Planet
		err := rows.Scan(&planet.PlanetID, &planet.PlanetName, &planet.PlanetType, &planet.HomeStar, &planet.Radius, &planet.Mass, &planet.Distance)
		if err != nil {
			return nil, err
		}
		planets = append(planets, &planet)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return planets, nil
}

func (r *PlanetRepository) GetPlanetByName(ctx context.Context, name string) (*entity.Planet, error) {
	planet := &entity.Planet{}
	query := `SELECT planet_id, planet_name, planet_type, home_star, radius, mass, distance FROM planets WHERE planet_name = ?`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&planet.PlanetID, &planet.PlanetName, &planet.PlanetType, &planet.HomeStar, &planet.Radius, &planet.Mass, &planet.Distance)
	if err != nil {
		return nil, translateErr(err)
	}

	return planet, nil
}

func (r *PlanetRepository) GetPlanetByID(ctx context.Context, id int) (*entity.Planet, error) {
	planet := &entity.Planet{}
	query := `SELECT planet_id, planet_name, planet_type, home_star, radius, mass, distance FROM planets WHERE planet_id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&planet.PlanetID, &planet.PlanetName, &planet.PlanetType, &planet.HomeStar, &planet.Radius, &planet.Mass, &planet.Distance)
	if err != nil {
		return nil, translateErr(err)
	}

	return planet, nil
}

// CreatePlanet inserts a planet, keeping a client-supplied id when one is set.
func (r *PlanetRepository) CreatePlanet(ctx context.Context, planet *entity.Planet) (*entity.Planet, error) {
	if planet.PlanetID > 0 {
		query := `INSERT INTO planets (planet_id, planet_name, planet_type, home_star, radius, mass, distance) VALUES (?, ?, ?, ?, ?, ?, ?)`
		_, err := r.db.ExecContext(ctx, query, planet.PlanetID, planet.PlanetName, planet.PlanetType, planet.HomeStar, planet.Radius, planet.Mass, planet.Distance)
		if err != nil {
			return nil, translateErr(err)
		}
		return planet, nil
	}

	query := `INSERT INTO planets (planet_name, planet_type, home_star, radius, mass, distance) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, planet.PlanetName, planet.PlanetType, planet.HomeStar, planet.Radius, planet.Mass, planet.Distance)
	if err != nil {
		return nil, translateErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	planet.PlanetID = int(id)
	return planet, nil
}

// UpdatePlanetDistance changes the orbital distance of the named planet and
// leaves every other column untouched. The row is read first so that setting
// an unchanged distance is not misreported as not found.
func (r *PlanetRepository) UpdatePlanetDistance(ctx context.Context, name string, distance float64) (*entity.Planet, error) {
	planet, err := r.GetPlanetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	query := `UPDATE planets SET distance = ? WHERE planet_name = ?`
	_, err = r.db.ExecContext(ctx, query, distance, name)
	if err != nil {
		return nil, err
	}

	planet.Distance = distance
	return planet, nil
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT id, first_name, last_name, email, password, COALESCE(username, '') FROM users WHERE email = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password, &user.Username)
	if err != nil {
		return nil, translateErr(err)
	}

	return user, nil
}

// CreateUser inserts a user. An empty username is stored as NULL so the
// unique index admits any number of accounts without one.
func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (first_name, last_name, email, password, username) VALUES (?, ?, ?, ?, NULLIF(?, ''))`
	res, err := r.db.ExecContext(ctx, query, user.FirstName, user.LastName, user.Email, user.Password, user.Username)
	if err != nil {
		return nil, translateErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) UpdateUserPassword(ctx context.Context, email, password string) error {
	if _, err := r.GetUserByEmail(ctx, email); err != nil {
		return err
	}

	query := `UPDATE users SET password = ? WHERE email = ?`
	_, err := r.db.ExecContext(ctx, query, password, email)
	return err
}
