// Package api implements the companion backend: a sqlite user table, JWT
// session tokens, and the three HTTP endpoints the client calls.
package api

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"github.com/kotanikosei/Emo/pkg/user"
)

// ErrNotFound marks a missing user row.
var ErrNotFound = errors.New("api: user not found")

// DB wraps the sqlite connection.
type DB struct {
	conn *sql.DB
}

// OpenDB opens (and migrates) the database at path.
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("api: open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("api: ping database: %w", err)
	}
	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("api: migrate: %w", err)
	}
	return db, nil
}

func (d *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			initial TEXT NOT NULL DEFAULT '',
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, q := range queries {
		if _, err := d.conn.Exec(q); err != nil {
			return err
		}
	}
	return d.seed()
}

// seed inserts the demo account on first run so a fresh backend accepts the
// client's default credentials.
func (d *DB) seed() error {
	var count int
	if err := d.conn.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := d.CreateUser(user.User{
		Name:     "デモユーザー",
		Email:    "demo@emocal.com",
		Password: "000",
		Status:   user.StatusActive,
	})
	return err
}

// Close releases the connection.
func (d *DB) Close() error {
	return d.conn.Close()
}

// CreateUser inserts a row and returns the assigned id.
func (d *DB) CreateUser(u user.User) (int, error) {
	if u.Initial == "" {
		u.Initial = user.Initial(u.Name)
	}
	if u.Status == "" {
		u.Status = user.StatusActive
	}
	res, err := d.conn.Exec(
		`INSERT INTO users (name, initial, email, password, status, is_admin) VALUES (?, ?, ?, ?, ?, ?)`,
		u.Name, u.Initial, u.Email, u.Password, u.Status, u.IsAdmin,
	)
	if err != nil {
		return 0, fmt.Errorf("api: create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// UserByEmail loads one row by email, password included: the login handler
// needs it for comparison.
func (d *DB) UserByEmail(email string) (user.User, error) {
	return d.scanUser(d.conn.QueryRow(
		`SELECT id, name, initial, email, password, status, is_admin FROM users WHERE email = ?`, email))
}

// UserByID loads one row by id.
func (d *DB) UserByID(id int) (user.User, error) {
	return d.scanUser(d.conn.QueryRow(
		`SELECT id, name, initial, email, password, status, is_admin FROM users WHERE id = ?`, id))
}

func (d *DB) scanUser(row *sql.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Initial, &u.Email, &u.Password, &u.Status, &u.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, ErrNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}
