package migrations

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAutoMigrateCreatesTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS planets").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := AutoMigratePlanets(0, db); err != nil {
		t.Fatalf("migrate planets: %v", err)
	}
	if err := AutoMigrateUsers(0, db); err != nil {
		t.Fatalf("migrate users: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSeedDatabaseInsertsCatalogAndTestUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT IGNORE INTO planets").
		WithArgs(1, "Mercury", "Class D", "Sol", 1516.0, 2.258e23, 35.98e6).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT IGNORE INTO planets").
		WithArgs(2, "Venus", "Class K", "Sol", 3760.0, 4.867e24, 67.24e6).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("INSERT IGNORE INTO planets").
		WithArgs(3, "Earth", "Class M", "Sol", 3959.0, 5.972e24, 92.96e6).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT IGNORE INTO users").
		WithArgs("William", "Herschel", "test@test.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := SeedDatabase(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
