package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	inErrors "github.com/temizmarket/eticaret/internal/errors"
)

type Product struct {
	ID                uuid.UUID
	Name              string
	Slug              string
	Description       pgtype.Text
	Price             pgtype.Numeric
	CampaignPrice     pgtype.Numeric
	CategoryID        uuid.UUID
	CategoryName      string
	ImageURLs         []string
	StockQuantity     int32
	MinStockLevel     int32
	Sku               pgtype.Text
	Variants          []string
	IsActive          bool
	IsFeatured        bool
	IsCampaign        bool
	CampaignStartDate pgtype.Timestamptz
	CampaignEndDate   pgtype.Timestamptz
	Tags              []string
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}

const productColumns = `p.id, p.name, p.slug, p.description, p.price, p.campaign_price,
	p.category_id, c.name, p.image_urls, p.stock_quantity, p.min_stock_level, p.sku,
	p.variants, p.is_active, p.is_featured, p.is_campaign, p.campaign_start_date,
	p.campaign_end_date, p.tags, p.created_at, p.updated_at`

const productFrom = ` from products p join categories c on c.id = p.category_id`

func scanProduct(row pgx.Row) (Product, error) {
	product := Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Price,
		&product.CampaignPrice,
		&product.CategoryID,
		&product.CategoryName,
		&product.ImageURLs,
		&product.StockQuantity,
		&product.MinStockLevel,
		&product.Sku,
		&product.Variants,
		&product.IsActive,
		&product.IsFeatured,
		&product.IsCampaign,
		&product.CampaignStartDate,
		&product.CampaignEndDate,
		&product.Tags,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	return product, err
}

type FindProductsParams struct {
	CategoryID *uuid.UUID
	IsActive   *bool
	IsFeatured *bool
	IsCampaign *bool
	Limit      int32
	Offset     int32
}

func (q *Queries) FindProducts(c context.Context, param FindProductsParams) ([]Product, error) {
	query := `select ` + productColumns + productFrom
	args := []interface{}{}

	where := ""
	appendFilter := func(clause string, value interface{}) {
		args = append(args, value)
		if where == "" {
			where = fmt.Sprintf(" where %s = $%d", clause, len(args))
			return
		}
		where += fmt.Sprintf(" and %s = $%d", clause, len(args))
	}
	if param.CategoryID != nil {
		appendFilter("p.category_id", *param.CategoryID)
	}
	if param.IsActive != nil {
		appendFilter("p.is_active", *param.IsActive)
	}
	if param.IsFeatured != nil {
		appendFilter("p.is_featured", *param.IsFeatured)
	}
	if param.IsCampaign != nil {
		appendFilter("p.is_campaign", *param.IsCampaign)
	}
	query += where + ` order by p.created_at desc`

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
		return nil, fmt.Errorf("failed querying products with error=%w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scanning product with error=%w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (q *Queries) FindProductById(c context.Context, id uuid.UUID) (Product, error) {
	row := q.pool.QueryRow(c, `select `+productColumns+productFrom+` where p.id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, inErrors.ErrProductNotFound
		}
		return Product{}, fmt.Errorf("failed finding product by id with error=%w", err)
	}
	return product, nil
}

func (q *Queries) SearchProducts(c context.Context, search string) ([]Product, error) {
	rows, err := q.pool.Query(
		c,
		`select `+productColumns+productFrom+`
		where p.is_active = true
			and (p.name ilike '%' || $1 || '%' or p.description ilike '%' || $1 || '%')
		order by p.created_at desc`,
		search,
	)
	if err != nil {
		return nil, fmt.Errorf("failed searching products with error=%w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scanning product with error=%w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

type UpsertProductParams struct {
	ID                uuid.UUID
	Name              string
	Slug              string
	Description       string
	Price             decimal.Decimal
	CampaignPrice     decimal.NullDecimal
	CategoryID        uuid.UUID
	ImageURLs         []string
	StockQuantity     int32
	MinStockLevel     int32
	Sku               string
	Variants          []string
	IsActive          bool
	IsFeatured        bool
	IsCampaign        bool
	CampaignStartDate *time.Time
	CampaignEndDate   *time.Time
	Tags              []string
}

func (q *Queries) InsertProduct(c context.Context, param UpsertProductParams) (Product, error) {
	row := q.pool.QueryRow(
		c,
		`with inserted as (
			insert into products (name, slug, description, price, campaign_price, category_id,
				image_urls, stock_quantity, min_stock_level, sku, variants, is_active,
				is_featured, is_campaign, campaign_start_date, campaign_end_date, tags)
			values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			returning *
		)
		select `+productColumns+` from inserted p join categories c on c.id = p.category_id`,
		param.Name,
		param.Slug,
		param.Description,
		numericFromDecimal(param.Price),
		numericFromNullDecimal(param.CampaignPrice),
		param.CategoryID,
		param.ImageURLs,
		param.StockQuantity,
		param.MinStockLevel,
		param.Sku,
		param.Variants,
		param.IsActive,
		param.IsFeatured,
		param.IsCampaign,
		param.CampaignStartDate,
		param.CampaignEndDate,
		param.Tags,
	)
	product, err := scanProduct(row)
	if err != nil {
		return Product{}, fmt.Errorf("failed inserting product with error=%w", err)
	}
	return product, nil
}

func (q *Queries) UpdateProduct(c context.Context, param UpsertProductParams) (Product, error) {
	row := q.pool.QueryRow(
		c,
		`with updated as (
			update products
			set name = $2, slug = $3, description = $4, price = $5, campaign_price = $6,
				category_id = $7, image_urls = $8, stock_quantity = $9, min_stock_level = $10,
				sku = $11, variants = $12, is_active = $13, is_featured = $14, is_campaign = $15,
				campaign_start_date = $16, campaign_end_date = $17, tags = $18, updated_at = now()
			where id = $1
			returning *
		)
		select `+productColumns+` from updated p join categories c on c.id = p.category_id`,
		param.ID,
		param.Name,
		param.Slug,
		param.Description,
		numericFromDecimal(param.Price),
		numericFromNullDecimal(param.CampaignPrice),
		param.CategoryID,
		param.ImageURLs,
		param.StockQuantity,
		param.MinStockLevel,
		param.Sku,
		param.Variants,
		param.IsActive,
		param.IsFeatured,
		param.IsCampaign,
		param.CampaignStartDate,
		param.CampaignEndDate,
		param.Tags,
	)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, inErrors.ErrProductNotFound
		}
		return Product{}, fmt.Errorf("failed updating product with error=%w", err)
	}
	return product, nil
}

func (q *Queries) DeleteProduct(c context.Context, id uuid.UUID) error {
	tag, err := q.pool.Exec(c, `delete from products where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed deleting product with error=%w", err)
	}
	if tag.RowsAffected() == 0 {
		return inErrors.ErrProductNotFound
	}
	return nil
}
