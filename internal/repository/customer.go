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

type Customer struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	Email       pgtype.Text
	Address     pgtype.Text
	City        pgtype.Text
	District    pgtype.Text
	Notes       pgtype.Text
	TotalOrders int32
	TotalSpent  pgtype.Numeric
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

const customerColumns = `id, name, phone, email, address, city, district, notes,
	total_orders, total_spent, created_at, updated_at`

func scanCustomer(row pgx.Row) (Customer, error) {
	customer := Customer{}
	err := row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Phone,
		&customer.Email,
		&customer.Address,
		&customer.City,
		&customer.District,
		&customer.Notes,
		&customer.TotalOrders,
		&customer.TotalSpent,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	return customer, err
}

func (q *Queries) FindCustomers(c context.Context, limit int32, offset int32) ([]Customer, error) {
	query := `select ` + customerColumns + ` from customers order by created_at desc`
	args := []interface{}{}
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" limit $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" offset $%d", len(args))
	}

	rows, err := q.pool.Query(c, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed querying customers with error=%w", err)
	}
	defer rows.Close()

	customers := []Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scanning customer with error=%w", err)
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (q *Queries) FindCustomerById(c context.Context, id uuid.UUID) (Customer, error) {
	row := q.pool.QueryRow(c, `select `+customerColumns+` from customers where id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, inErrors.ErrCustomerNotFound
		}
		return Customer{}, fmt.Errorf("failed finding customer by id with error=%w", err)
	}
	return customer, nil
}

func (q *Queries) FindCustomerByPhone(c context.Context, phone string) (Customer, error) {
	row := q.pool.QueryRow(c, `select `+customerColumns+` from customers where phone = $1`, phone)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, inErrors.ErrCustomerNotFound
		}
		return Customer{}, fmt.Errorf("failed finding customer by phone with error=%w", err)
	}
	return customer, nil
}

type UpsertCustomerParams struct {
	ID       uuid.UUID
	Name     string
	Phone    string
	Email    string
	Address  string
	City     string
	District string
	Notes    string
}

func (q *Queries) InsertCustomer(c context.Context, param UpsertCustomerParams) (Customer, error) {
	row := q.pool.QueryRow(
		c,
		`insert into customers (name, phone, email, address, city, district, notes)
		values ($1, $2, $3, $4, $5, $6, $7)
		returning `+customerColumns,
		param.Name,
		param.Phone,
		param.Email,
		param.Address,
		param.City,
		param.District,
		param.Notes,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return Customer{}, fmt.Errorf("failed inserting customer with error=%w", err)
	}
	return customer, nil
}

func (q *Queries) UpdateCustomer(c context.Context, param UpsertCustomerParams) (Customer, error) {
	row := q.pool.QueryRow(
		c,
		`update customers
		set name = $2, phone = $3, email = $4, address = $5, city = $6, district = $7,
			notes = $8, updated_at = now()
		where id = $1
		returning `+customerColumns,
		param.ID,
		param.Name,
		param.Phone,
		param.Email,
		param.Address,
		param.City,
		param.District,
		param.Notes,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, inErrors.ErrCustomerNotFound
		}
		return Customer{}, fmt.Errorf("failed updating customer with error=%w", err)
	}
	return customer, nil
}
