package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/pkg/response"
	"github.com/temizmarket/eticaret/storefront/internal/otel"
)

const (
	cacheKeyCategories   = "storefront:categories"
	cacheKeyProductsFmt  = "storefront:products:%s"
	cacheKeyProductFmt   = "storefront:product:%s"
	cacheKeySettings     = "storefront:settings"
	catalogCacheDuration = 5 * time.Minute
)

type CatalogService struct {
	queries *repository.Queries
	cache   *redis.Client
}

func NewCatalogService(queries *repository.Queries, cache *redis.Client) CatalogService {
	return CatalogService{queries: queries, cache: cache}
}

func (svc CatalogService) FindCategories(c context.Context) ([]response.Category, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindCategories").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding categories in cache").Logger()
	logger.Info().Str(log.KeyCacheKey, cacheKeyCategories).Msg("finding categories in cache")
	cached, err := svc.cache.Get(c, cacheKeyCategories).Result()
	if err == nil {
		categories := []response.Category{}
		if err := json.Unmarshal([]byte(cached), &categories); err == nil {
			logger.Info().Msg("found categories in cache")
			return categories, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding categories in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding categories in database").Logger()
	logger.Info().Msg("finding categories in database")
	c = logger.WithContext(c)
	rows, err := svc.queries.FindCategories(c, true)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	categories := categoryTree(rows)
	logger.Info().Msg("found categories in database")

	logger = logger.With().Str(log.KeyProcess, "caching categories").Logger()
	jsonCategories, err := json.Marshal(categories)
	if err != nil {
		err = fmt.Errorf("failed marshaling categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return categories, nil
	}
	if err = svc.cache.SetEx(c, cacheKeyCategories, jsonCategories, catalogCacheDuration).Err(); err != nil {
		err = fmt.Errorf("failed caching categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("cached categories")

	return categories, nil
}

// categoryTree nests child categories under their parent, preserving sort order.
func categoryTree(rows []repository.Category) []response.Category {
	children := map[uuid.UUID][]response.Category{}
	roots := []response.Category{}
	for _, row := range rows {
		if row.ParentID == nil {
			roots = append(roots, row.Response())
			continue
		}
		children[*row.ParentID] = append(children[*row.ParentID], row.Response())
	}
	for i := range roots {
		roots[i].Children = children[roots[i].ID]
	}
	return roots
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

	cacheKey := fmt.Sprintf(cacheKeyProductsFmt, productsCacheSuffix(param))

	logger = logger.With().Str(log.KeyProcess, "finding products in cache").Logger()
	logger.Info().Str(log.KeyCacheKey, cacheKey).Msg("finding products in cache")
	cached, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil {
		products := []response.Product{}
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			logger.Info().Msg("found products in cache")
			return products, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding products in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Info().Msg("finding products in database")
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
	logger.Info().Msg("found products in database")

	logger = logger.With().Str(log.KeyProcess, "caching products").Logger()
	jsonProducts, err := json.Marshal(products)
	if err != nil {
		err = fmt.Errorf("failed marshaling products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return products, nil
	}
	if err = svc.cache.SetEx(c, cacheKey, jsonProducts, catalogCacheDuration).Err(); err != nil {
		err = fmt.Errorf("failed caching products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("cached products")

	return products, nil
}

func productsCacheSuffix(param repository.FindProductsParams) string {
	category := "all"
	if param.CategoryID != nil {
		category = param.CategoryID.String()
	}
	flag := func(b *bool) string {
		if b == nil {
			return "any"
		}
		return fmt.Sprintf("%t", *b)
	}
	return fmt.Sprintf(
		"%s:%s:%s:%d:%d",
		category,
		flag(param.IsFeatured),
		flag(param.IsCampaign),
		param.Limit,
		param.Offset,
	)
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

	cacheKey := fmt.Sprintf(cacheKeyProductFmt, id.String())

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Info().Str(log.KeyCacheKey, cacheKey).Msg("finding product in cache")
	cached, err := svc.cache.Get(c, cacheKey).Result()
	if err == nil {
		product := response.Product{}
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			logger.Info().Msg("found product in cache")
			return product, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding product in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Info().Msg("finding product in database")
	c = logger.WithContext(c)
	row, err := svc.queries.FindProductById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding productId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	if !row.IsActive {
		err = inErrors.ErrProductNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	product := row.Response()
	logger.Info().Msg("found product in database")

	logger = logger.With().Str(log.KeyProcess, "caching product").Logger()
	jsonProduct, err := json.Marshal(product)
	if err != nil {
		err = fmt.Errorf("failed marshaling product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return product, nil
	}
	if err = svc.cache.SetEx(c, cacheKey, jsonProduct, catalogCacheDuration).Err(); err != nil {
		err = fmt.Errorf("failed caching product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("cached product")

	return product, nil
}

func (svc CatalogService) SearchProducts(
	c context.Context,
	search string,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService SearchProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService SearchProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "searching products").Logger()
	logger.Info().Msgf("searching products with query=%s", search)
	c = logger.WithContext(c)
	rows, err := svc.queries.SearchProducts(c, search)
	if err != nil {
		err = fmt.Errorf("failed searching products with error=%w", err)
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

func (svc CatalogService) FindSettings(c context.Context) ([]response.Setting, error) {
	c, span := otel.Tracer.Start(c, "CatalogService FindSettings")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService FindSettings").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding settings in cache").Logger()
	logger.Info().Str(log.KeyCacheKey, cacheKeySettings).Msg("finding settings in cache")
	cached, err := svc.cache.Get(c, cacheKeySettings).Result()
	if err == nil {
		settings := []response.Setting{}
		if err := json.Unmarshal([]byte(cached), &settings); err == nil {
			logger.Info().Msg("found settings in cache")
			return settings, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logger.Info().Err(err).Msg("failed finding settings in cache")
	}

	logger = logger.With().Str(log.KeyProcess, "finding settings in database").Logger()
	logger.Info().Msg("finding settings in database")
	c = logger.WithContext(c)
	rows, err := svc.queries.FindSettings(c)
	if err != nil {
		err = fmt.Errorf("failed finding settings with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	settings := make([]response.Setting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, row.Response())
	}
	logger.Info().Msg("found settings in database")

	logger = logger.With().Str(log.KeyProcess, "caching settings").Logger()
	jsonSettings, err := json.Marshal(settings)
	if err != nil {
		err = fmt.Errorf("failed marshaling settings with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return settings, nil
	}
	if err = svc.cache.SetEx(c, cacheKeySettings, jsonSettings, catalogCacheDuration).Err(); err != nil {
		err = fmt.Errorf("failed caching settings with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("cached settings")

	return settings, nil
}
