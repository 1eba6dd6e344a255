// Package store keeps the results of simulated games in a sqlite database so
// that batches run on different days can be compared.
package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/SvenDH/go-bartog/sim"
)

type Repository struct {
	Db *sql.DB
}

// Open opens or creates the database at path. ":memory:" gives a private
// database that lives as long as the repository.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	repo, err := NewRepository(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func NewRepository(db *sql.DB) (*Repository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS result (
			id TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			cpus INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			events INTEGER NOT NULL,
			finished INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS winner (
			result TEXT NOT NULL REFERENCES result(id),
			name TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return &Repository{Db: db}, nil
}

func (repo *Repository) Close() error { return repo.Db.Close() }

// AddResults stores a batch in one transaction.
func (repo *Repository) AddResults(results []sim.Result) error {
	tx, err := repo.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, r := range results {
		id := r.ID.String()
		// seeds use all 64 bits, which database/sql does not take as integers
		_, err := tx.Exec(
			"INSERT INTO result(id, seed, cpus, frames, events, finished) values(?, ?, ?, ?, ?, ?)",
			id, strconv.FormatUint(r.Seed, 10), r.CPUs, r.Frames, r.Events, r.Finished,
		)
		if err != nil {
			return fmt.Errorf("error in db execution: %w", err)
		}
		for _, w := range r.Winners {
			if _, err := tx.Exec("INSERT INTO winner(result, name) values(?, ?)", id, w); err != nil {
				return fmt.Errorf("error in db execution: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (repo *Repository) Count() (int, error) {
	var n int
	err := repo.Db.QueryRow("SELECT COUNT(*) FROM result").Scan(&n)
	return n, err
}

// Wins counts the games each player has won over every stored batch.
func (repo *Repository) Wins() (map[string]int, error) {
	rows, err := repo.Db.Query("SELECT name, COUNT(*) FROM winner GROUP BY name")
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()

	wins := map[string]int{}
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		wins[name] = n
	}
	return wins, rows.Err()
}

// FindResult returns nil when no result has the given id.
func (repo *Repository) FindResult(id ulid.ULID) (*sim.Result, error) {
	row := repo.Db.QueryRow(
		"SELECT seed, cpus, frames, events, finished FROM result WHERE id = ? LIMIT 1", id.String())
	r := sim.Result{ID: id}
	var seed string
	if err := row.Scan(&seed, &r.CPUs, &r.Frames, &r.Events, &r.Finished); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	var err error
	if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return nil, err
	}

	rows, err := repo.Db.Query("SELECT name FROM winner WHERE result = ? ORDER BY rowid", id.String())
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		r.Winners = append(r.Winners, name)
	}
	return &r, rows.Err()
}
