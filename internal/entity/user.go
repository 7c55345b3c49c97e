package entity

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"` // stored as a bcrypt hash
	Username  string `json:"username" form:"username"` // optional, unique when present
}

/*
Mysql Schema:
CREATE TABLE users (
	id INT AUTO_INCREMENT PRIMARY KEY,
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	username VARCHAR(100)
);

// uniqueness is enforced by the database, not the application
CREATE UNIQUE INDEX email_idx ON users(email);
CREATE UNIQUE INDEX username_idx ON users(username);
*/
