package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	inErrors "github.com/temizmarket/eticaret/internal/errors"
)

type Category struct {
	ID          uuid.UUID
	Name        string
	Description pgtype.Text
	ParentID    *uuid.UUID
	ImageURL    pgtype.Text
	SortOrder   int32
	IsActive    bool
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const categoryColumns = `id, name, description, parent_id, image_url, sort_order, is_active, created_at, updated_at`

func scanCategory(row pgx.Row) (Category, error) {
	category := Category{}
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.ParentID,
		&category.ImageURL,
		&category.SortOrder,
		&category.IsActive,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	return category, err
}

func (q *Queries) FindCategories(c context.Context, onlyActive bool) ([]Category, error) {
	query := `select ` + categoryColumns + ` from categories`
	if onlyActive {
		query += ` where is_active = true`
	}
	query += ` order by sort_order asc, name asc`

	rows, err := q.pool.Query(c, query)
	if err != nil {
		return nil, fmt.Errorf("failed querying categories with error=%w", err)
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scanning category with error=%w", err)
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (q *Queries) FindCategoryById(c context.Context, id uuid.UUID) (Category, error) {
	row := q.pool.QueryRow(
		c,
		`select `+categoryColumns+` from categories where id = $1`,
		id,
	)
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, inErrors.ErrCategoryNotFound
		}
		return Category{}, fmt.Errorf("failed finding category by id with error=%w", err)
	}
	return category, nil
}

type InsertCategoryParams struct {
	Name        string
	Description string
	ParentID    *uuid.UUID
	ImageURL    string
	SortOrder   int32
	IsActive    bool
}

func (q *Queries) InsertCategory(c context.Context, param InsertCategoryParams) (Category, error) {
	row := q.pool.QueryRow(
		c,
		`insert into categories (name, description, parent_id, image_url, sort_order, is_active)
		values ($1, $2, $3, $4, $5, $6)
		returning `+categoryColumns,
		param.Name,
		param.Description,
		param.ParentID,
		param.ImageURL,
		param.SortOrder,
		param.IsActive,
	)
	category, err := scanCategory(row)
	if err != nil {
		return Category{}, fmt.Errorf("failed inserting category with error=%w", err)
	}
	return category, nil
}

type UpdateCategoryParams struct {
	ID          uuid.UUID
	Name        string
	Description string
	ParentID    *uuid.UUID
	ImageURL    string
	SortOrder   int32
	IsActive    bool
}

func (q *Queries) UpdateCategory(c context.Context, param UpdateCategoryParams) (Category, error) {
	row := q.pool.QueryRow(
		c,
		`update categories
		set name = $2, description = $3, parent_id = $4, image_url = $5,
			sort_order = $6, is_active = $7, updated_at = now()
		where id = $1
		returning `+categoryColumns,
		param.ID,
		param.Name,
		param.Description,
		param.ParentID,
		param.ImageURL,
		param.SortOrder,
		param.IsActive,
	)
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Category{}, inErrors.ErrCategoryNotFound
		}
		return Category{}, fmt.Errorf("failed updating category with error=%w", err)
	}
	return category, nil
}

func (q *Queries) DeleteCategory(c context.Context, id uuid.UUID) error {
	tag, err := q.pool.Exec(c, `delete from categories where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed deleting category with error=%w", err)
	}
	if tag.RowsAffected() == 0 {
		return inErrors.ErrCategoryNotFound
	}
	return nil
}
