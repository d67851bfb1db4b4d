package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/cart"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/storefront/internal/otel"
	"github.com/temizmarket/eticaret/storefront/pkg/request"
)

type productFinder interface {
	FindProductById(c context.Context, id uuid.UUID) (repository.Product, error)
}

type CartService struct {
	products productFinder
	store    cart.Store
}

func NewCartService(products productFinder, store cart.Store) CartService {
	return CartService{products: products, store: store}
}

func (svc CartService) manager(sessionID string) cart.Manager {
	return cart.NewManager(svc.store, cart.SessionKey(sessionID))
}

func (svc CartService) FindCart(c context.Context, sessionID string) cart.Cart {
	c, span := otel.Tracer.Start(c, "CartService FindCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCart").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger.Info().Msg("loading cart")
	c = logger.WithContext(c)
	return svc.manager(sessionID).Load(c)
}

func (svc CartService) AddItem(
	c context.Context,
	sessionID string,
	param request.AddCartItem,
) (cart.Cart, error) {
	c, span := otel.Tracer.Start(c, "CartService AddItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddItem").
		Str(log.KeySessionID, sessionID).
		Str(log.KeyProductID, param.ProductID.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Info().Msg("finding product")
	c = logger.WithContext(c)
	product, err := svc.products.FindProductById(c, param.ProductID)
	if err != nil {
		err = fmt.Errorf(
			"failed finding productId=%s with error=%w",
			param.ProductID.String(),
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	if !product.IsActive {
		err = inErrors.ErrProductNotFound
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return cart.Cart{}, err
	}
	logger.Info().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "adding cart item").Logger()
	logger.Info().Msg("adding cart item")
	manager := svc.manager(sessionID)
	updated := manager.AddItem(
		c,
		manager.Load(c),
		product.Snapshot(),
		param.Quantity,
		param.SelectedVariant,
	)
	logger.Info().Msg("added cart item")

	return updated, nil
}

func (svc CartService) UpdateItem(
	c context.Context,
	sessionID string,
	itemID string,
	quantity int,
) cart.Cart {
	c, span := otel.Tracer.Start(c, "CartService UpdateItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateItem").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger.Info().Msgf("updating cart itemId=%s to quantity=%d", itemID, quantity)
	c = logger.WithContext(c)
	manager := svc.manager(sessionID)
	return manager.SetQuantity(c, manager.Load(c), itemID, quantity)
}

func (svc CartService) RemoveItem(c context.Context, sessionID string, itemID string) cart.Cart {
	c, span := otel.Tracer.Start(c, "CartService RemoveItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveItem").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger.Info().Msgf("removing cart itemId=%s", itemID)
	c = logger.WithContext(c)
	manager := svc.manager(sessionID)
	return manager.RemoveItem(c, manager.Load(c), itemID)
}

func (svc CartService) ClearCart(c context.Context, sessionID string) cart.Cart {
	c, span := otel.Tracer.Start(c, "CartService ClearCart")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService ClearCart").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	return svc.manager(sessionID).Clear(c)
}
