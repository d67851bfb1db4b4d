package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	inErrors "github.com/temizmarket/eticaret/internal/errors"
)

type Order struct {
	ID            uuid.UUID
	OrderNumber   string
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	Address       string
	City          pgtype.Text
	District      pgtype.Text
	TotalAmount   pgtype.Numeric
	Status        string
	PaymentMethod string
	Notes         pgtype.Text
	AdminNotes    pgtype.Text
	Items         []byte
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

const orderColumns = `o.id, o.order_number, o.customer_id, o.customer_name, o.customer_phone,
	o.address, o.city, o.district, o.total_amount, o.status, o.payment_method, o.notes,
	o.admin_notes, items.items, o.created_at, o.updated_at`

const orderItemsJoin = ` cross join lateral (
		select coalesce(jsonb_agg(jsonb_build_object(
			'id', i.id,
			'product_id', i.product_id,
			'product_name', i.product_name,
			'product_price', i.product_price,
			'quantity', i.quantity,
			'selected_variant', i.selected_variant,
			'subtotal', i.subtotal
		) order by i.created_at), '[]'::jsonb) as items
		from order_items i
		where i.order_id = o.id
	) items`

func scanOrder(row pgx.Row) (Order, error) {
	order := Order{}
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerID,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.Address,
		&order.City,
		&order.District,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentMethod,
		&order.Notes,
		&order.AdminNotes,
		&order.Items,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	return order, err
}

type CreateOrderItemParams struct {
	ProductID       uuid.UUID
	ProductName     string
	ProductPrice    decimal.Decimal
	Quantity        int32
	SelectedVariant string
	Subtotal        decimal.Decimal
}

type CreateOrderParams struct {
	CustomerID    uuid.UUID
	CustomerName  string
	CustomerPhone string
	Address       string
	City          string
	District      string
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Notes         string
	Items         []CreateOrderItemParams
}

func (q *Queries) CreateOrder(c context.Context, param CreateOrderParams) (Order, error) {
	tx, err := q.pool.BeginTx(c, pgx.TxOptions{})
	if err != nil {
		return Order{}, fmt.Errorf("failed starting transaction with error=%w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(c); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = errors.Join(err, rollbackErr)
			}
		}
	}()

	var orderID uuid.UUID
	err = tx.QueryRow(
		c,
		`insert into orders (customer_id, customer_name, customer_phone, address, city,
			district, total_amount, status, payment_method, notes)
		values ($1, $2, $3, $4, $5, $6, $7, 'pending', $8, $9)
		returning id`,
		param.CustomerID,
		param.CustomerName,
		param.CustomerPhone,
		param.Address,
		param.City,
		param.District,
		numericFromDecimal(param.TotalAmount),
		param.PaymentMethod,
		param.Notes,
	).Scan(&orderID)
	if err != nil {
		return Order{}, fmt.Errorf("failed inserting order with error=%w", err)
	}

	for _, item := range param.Items {
		_, err = tx.Exec(
			c,
			`insert into order_items (order_id, product_id, product_name, product_price,
				quantity, selected_variant, subtotal)
			values ($1, $2, $3, $4, $5, $6, $7)`,
			orderID,
			item.ProductID,
			item.ProductName,
			numericFromDecimal(item.ProductPrice),
			item.Quantity,
			item.SelectedVariant,
			numericFromDecimal(item.Subtotal),
		)
		if err != nil {
			return Order{}, fmt.Errorf("failed inserting order item with error=%w", err)
		}
	}

	_, err = tx.Exec(
		c,
		`update customers
		set total_orders = total_orders + 1, total_spent = total_spent + $2, updated_at = now()
		where id = $1`,
		param.CustomerID,
		numericFromDecimal(param.TotalAmount),
	)
	if err != nil {
		return Order{}, fmt.Errorf("failed updating customer order stats with error=%w", err)
	}

	row := tx.QueryRow(c, `select `+orderColumns+` from orders o`+orderItemsJoin+` where o.id = $1`, orderID)
	order, err := scanOrder(row)
	if err != nil {
		return Order{}, fmt.Errorf("failed scanning created order with error=%w", err)
	}

	if err = tx.Commit(c); err != nil {
		return Order{}, fmt.Errorf("failed committing transaction with error=%w", err)
	}
	return order, nil
}

type FindOrdersParams struct {
	Status *string
	Limit  int32
	Offset int32
}

func (q *Queries) FindOrders(c context.Context, param FindOrdersParams) ([]Order, error) {
	query := `select ` + orderColumns + ` from orders o` + orderItemsJoin
	args := []interface{}{}
	if param.Status != nil {
		args = append(args, *param.Status)
		query += fmt.Sprintf(" where o.status = $%d", len(args))
	}
	query += ` order by o.created_at desc`
	if param.Limit > 0 {
		args = append(args, param.Limit)
		query += fmt.Sprintf(" limit $%d", len(args))
	}
	if param.Offset > 0 {
		args = append(args, param.Offset)
		query += fmt.Sprintf(" offset $%d", len(args))
	}

	rows, err := q.pool.Query(c, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed querying orders with error=%w", err)
	}
	defer rows.Close()

	orders := []Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scanning order with error=%w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (q *Queries) FindOrderById(c context.Context, id uuid.UUID) (Order, error) {
	row := q.pool.QueryRow(c, `select `+orderColumns+` from orders o`+orderItemsJoin+` where o.id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, inErrors.ErrOrderNotFound
		}
		return Order{}, fmt.Errorf("failed finding order by id with error=%w", err)
	}
	return order, nil
}

type UpdateOrderStatusParams struct {
	ID         uuid.UUID
	Status     string
	AdminNotes string
}

func (q *Queries) UpdateOrderStatus(c context.Context, param UpdateOrderStatusParams) (Order, error) {
	row := q.pool.QueryRow(
		c,
		`with updated as (
			update orders
			set status = $2, admin_notes = $3, updated_at = now()
			where id = $1
			returning *
		)
		select `+orderColumns+` from updated o`+orderItemsJoin,
		param.ID,
		param.Status,
		param.AdminNotes,
	)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Order{}, inErrors.ErrOrderNotFound
		}
		return Order{}, fmt.Errorf("failed updating order status with error=%w", err)
	}
	return order, nil
}

type DashboardStats struct {
	TodayOrders   int64
	TodayRevenue  pgtype.Numeric
	WeekOrders    int64
	WeekRevenue   pgtype.Numeric
	PendingOrders int64
}

func (q *Queries) FindDashboardStats(c context.Context) (DashboardStats, error) {
	stats := DashboardStats{}
	err := q.pool.QueryRow(
		c,
		`select
			count(*) filter (where created_at >= date_trunc('day', now())),
			coalesce(sum(total_amount) filter (where created_at >= date_trunc('day', now())), 0),
			count(*) filter (where created_at >= date_trunc('day', now()) - interval '6 days'),
			coalesce(sum(total_amount) filter (where created_at >= date_trunc('day', now()) - interval '6 days'), 0),
			count(*) filter (where status = 'pending')
		from orders
		where status <> 'cancelled'`,
	).Scan(
		&stats.TodayOrders,
		&stats.TodayRevenue,
		&stats.WeekOrders,
		&stats.WeekRevenue,
		&stats.PendingOrders,
	)
	if err != nil {
		return DashboardStats{}, fmt.Errorf("failed querying dashboard stats with error=%w", err)
	}
	return stats, nil
}

func (q *Queries) FindLatestPendingOrders(c context.Context, limit int32) ([]Order, error) {
	status := "pending"
	return q.FindOrders(c, FindOrdersParams{Status: &status, Limit: limit})
}
