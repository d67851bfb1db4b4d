package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/admin/internal/otel"
	adminRequest "github.com/temizmarket/eticaret/admin/pkg/request"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/pkg/response"
)

const storefrontCachePattern = "storefront:*"

type CatalogService struct {
	queries *repository.Queries
	cache   *redis.Client
}

func NewCatalogService(queries *repository.Queries, cache *redis.Client) CatalogService {
	return CatalogService{queries: queries, cache: cache}
}

// invalidateStorefrontCache drops every cached storefront read so admin writes
// become visible without waiting for the TTL.
func (svc CatalogService) invalidateStorefrontCache(c context.Context) {
	c, span := otel.Tracer.Start(c, "CatalogService invalidateStorefrontCache")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService invalidateStorefrontCache").
		Logger()

	iter := svc.cache.Scan(c, 0, storefrontCachePattern, 0).Iterator()
	for iter.Next(c) {
		if err := svc.cache.Del(c, iter.Val()).Err(); err != nil {
			err = fmt.Errorf("failed deleting cacheKey=%s with error=%w", iter.Val(), err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}
	if err := iter.Err(); err != nil {
		err = fmt.Errorf("failed scanning storefront cache keys with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("invalidated storefront cache")
}

func (svc CatalogService) FindCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindCategories").
		Logger()

	logger.Info().Msg("finding categories")
	c = logger.WithContext(c)
	rows, err := svc.queries.FindCategories(c, false)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	categories := make([]response.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.Response())
	}
	logger.Info().Msgf("found %d categories", len(categories))

	return categories, nil
}

func (svc CatalogService) FindCategoryById(
	c context.Context,
	id uuid.UUID,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindCategoryById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindCategoryById").
		Str(log.KeyCategoryID, id.String()).
		Logger()

	logger.Info().Msg("finding category")
	c = logger.WithContext(c)
	row, err := svc.queries.FindCategoryById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding categoryId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Msg("found category")

	return row.Response(), nil
}

func (svc CatalogService) InsertCategory(
	c context.Context,
	param adminRequest.UpsertCategory,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService InsertCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService InsertCategory").
		Logger()

	logger.Info().Msg("inserting category")
	c = logger.WithContext(c)
	row, err := svc.queries.InsertCategory(c, repository.InsertCategoryParams{
		Name:        param.Name,
		Description: param.Description,
		ParentID:    param.ParentID,
		ImageURL:    param.ImageURL,
		SortOrder:   param.SortOrder,
		IsActive:    param.IsActive,
	})
	if err != nil {
		err = fmt.Errorf("failed inserting category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Str(log.KeyCategoryID, row.ID.String()).Msg("inserted category")

	svc.invalidateStorefrontCache(c)

	return row.Response(), nil
}

func (svc CatalogService) UpdateCategory(
	c context.Context,
	id uuid.UUID,
	param adminRequest.UpsertCategory,
) (response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService UpdateCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService UpdateCategory").
		Str(log.KeyCategoryID, id.String()).
		Logger()

	logger.Info().Msg("updating category")
	c = logger.WithContext(c)
	row, err := svc.queries.UpdateCategory(c, repository.UpdateCategoryParams{
		ID:          id,
		Name:        param.Name,
		Description: param.Description,
		ParentID:    param.ParentID,
		ImageURL:    param.ImageURL,
		SortOrder:   param.SortOrder,
		IsActive:    param.IsActive,
	})
	if err != nil {
		err = fmt.Errorf("failed updating categoryId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, err
	}
	logger.Info().Msg("updated category")

	svc.invalidateStorefrontCache(c)

	return row.Response(), nil
}

func (svc CatalogService) DeleteCategory(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CatalogService DeleteCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService DeleteCategory").
		Str(log.KeyCategoryID, id.String()).
		Logger()

	logger.Info().Msg("deleting category")
	c = logger.WithContext(c)
	if err := svc.queries.DeleteCategory(c, id); err != nil {
		err = fmt.Errorf("failed deleting categoryId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted category")

	svc.invalidateStorefrontCache(c)

	return nil
}

func (svc CatalogService) FindProducts(
	c context.Context,
	param repository.FindProductsParams,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProducts").
		Logger()

	logger.Info().Msg("finding products")
	c = logger.WithContext(c)
	rows, err := svc.queries.FindProducts(c, param)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	products := make([]response.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.Response())
	}
	logger.Info().Msgf("found %d products", len(products))

	return products, nil
}

func (svc CatalogService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindProductById").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	row, err := svc.queries.FindProductById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("found product")

	return row.Response(), nil
}

func upsertProductParams(param adminRequest.UpsertProduct) repository.UpsertProductParams {
	return repository.UpsertProductParams{
		Name:              param.Name,
		Slug:              param.Slug,
		Description:       param.Description,
		Price:             param.Price,
		CampaignPrice:     param.CampaignPrice,
		CategoryID:        param.CategoryID,
		ImageURLs:         param.ImageURLs,
		StockQuantity:     param.StockQuantity,
		MinStockLevel:     param.MinStockLevel,
		Sku:               param.Sku,
		Variants:          param.Variants,
		IsActive:          param.IsActive,
		IsFeatured:        param.IsFeatured,
		IsCampaign:        param.IsCampaign,
		CampaignStartDate: param.CampaignStartDate,
		CampaignEndDate:   param.CampaignEndDate,
		Tags:              param.Tags,
	}
}

func (svc CatalogService) InsertProduct(
	c context.Context,
	param adminRequest.UpsertProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService InsertProduct").
		Logger()

	logger.Info().Msg("inserting product")
	c = logger.WithContext(c)
	row, err := svc.queries.InsertProduct(c, upsertProductParams(param))
	if err != nil {
		err = fmt.Errorf("failed inserting product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Str(log.KeyProductID, row.ID.String()).Msg("inserted product")

	svc.invalidateStorefrontCache(c)

	return row.Response(), nil
}

func (svc CatalogService) UpdateProduct(
	c context.Context,
	id uuid.UUID,
	param adminRequest.UpsertProduct,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService UpdateProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger.Info().Msg("updating product")
	c = logger.WithContext(c)
	repoParam := upsertProductParams(param)
	repoParam.ID = id
	row, err := svc.queries.UpdateProduct(c, repoParam)
	if err != nil {
		err = fmt.Errorf("failed updating productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Info().Msg("updated product")

	svc.invalidateStorefrontCache(c)

	return row.Response(), nil
}

func (svc CatalogService) DeleteProduct(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CatalogService DeleteProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService DeleteProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger.Info().Msg("deleting product")
	c = logger.WithContext(c)
	if err := svc.queries.DeleteProduct(c, id); err != nil {
		err = fmt.Errorf("failed deleting productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("deleted product")

	svc.invalidateStorefrontCache(c)

	return nil
}
