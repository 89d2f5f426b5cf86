package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-registry/internal/domain/cats"
)

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

const catColumns = `id, name, age, gender, color, mother, father, breed, notes, vaccinated`

func (r *CatsRepo) List(ctx context.Context) ([]cats.Cat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+catColumns+`
		FROM cats
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+catColumns+`
		FROM cats
		WHERE id = $1
		ORDER BY position ASC
		LIMIT 1
	`, id)

	c, err := scanCat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return c, nil
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (`+catColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		c.ID,
		c.Name,
		c.Age,
		string(c.Gender),
		c.Color,
		c.Mother,
		c.Father,
		c.Breed,
		c.Notes,
		string(c.Vaccinated),
	)
	return err
}

// Update toca solo la primera fila con ese id.
func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET
			name = $2,
			age = $3,
			gender = $4,
			color = $5,
			mother = $6,
			father = $7,
			breed = $8,
			notes = $9,
			vaccinated = $10
		WHERE position = (
			SELECT position FROM cats WHERE id = $1 ORDER BY position ASC LIMIT 1
		)
	`,
		c.ID,
		c.Name,
		c.Age,
		string(c.Gender),
		c.Color,
		c.Mother,
		c.Father,
		c.Breed,
		c.Notes,
		string(c.Vaccinated),
	)
	return requireRows(res, err)
}

func (r *CatsRepo) Delete(ctx context.Context, id string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *CatsRepo) ChangeID(ctx context.Context, oldID, newID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cats
		SET id = $2
		WHERE position = (
			SELECT position FROM cats WHERE id = $1 ORDER BY position ASC LIMIT 1
		)
	`, oldID, newID)
	return requireRows(res, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(row rowScanner) (cats.Cat, error) {
	var c cats.Cat
	var gender, vacc string
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Age,
		&gender,
		&c.Color,
		&c.Mother,
		&c.Father,
		&c.Breed,
		&c.Notes,
		&vacc,
	); err != nil {
		return cats.Cat{}, err
	}
	c.Gender = cats.Gender(gender)
	c.Vaccinated = cats.Vaccinated(vacc)
	return c, nil
}

func requireRows(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cats.ErrNotFound
	}
	return nil
}
