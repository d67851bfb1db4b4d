package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/temizmarket/eticaret/cart"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/pkg/response"
	"github.com/temizmarket/eticaret/storefront/internal/otel"
	"github.com/temizmarket/eticaret/storefront/pkg/request"
)

type checkoutStore interface {
	FindCustomerByPhone(c context.Context, phone string) (repository.Customer, error)
	InsertCustomer(
		c context.Context,
		param repository.UpsertCustomerParams,
	) (repository.Customer, error)
	CreateOrder(c context.Context, param repository.CreateOrderParams) (repository.Order, error)
}

type CheckoutService struct {
	store checkoutStore
	carts cart.Store
}

func NewCheckoutService(store checkoutStore, carts cart.Store) CheckoutService {
	return CheckoutService{store: store, carts: carts}
}

func (svc CheckoutService) Checkout(
	c context.Context,
	sessionID string,
	param request.Checkout,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "CheckoutService Checkout")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CheckoutService Checkout").
		Str(log.KeySessionID, sessionID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "loading cart").Logger()
	logger.Info().Msg("loading cart")
	c = logger.WithContext(c)
	manager := cart.NewManager(svc.carts, cart.SessionKey(sessionID))
	current := manager.Load(c)
	if len(current.Items) == 0 {
		err := inErrors.ErrEmptyCart
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msgf("loaded cart with %d items", len(current.Items))

	logger = logger.With().Str(log.KeyProcess, "finding customer by phone").Logger()
	logger.Info().Msg("finding customer by phone")
	customer, err := svc.store.FindCustomerByPhone(c, param.CustomerPhone)
	if err != nil {
		if !errors.Is(err, inErrors.ErrCustomerNotFound) {
			err = fmt.Errorf("failed finding customer by phone with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Order{}, err
		}

		logger = logger.With().Str(log.KeyProcess, "inserting customer").Logger()
		logger.Info().Msg("customer not found, inserting customer")
		customer, err = svc.store.InsertCustomer(c, repository.UpsertCustomerParams{
			Name:     param.CustomerName,
			Phone:    param.CustomerPhone,
			Email:    param.CustomerEmail,
			Address:  param.Address,
			City:     param.City,
			District: param.District,
		})
		if err != nil {
			err = fmt.Errorf("failed inserting customer with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Order{}, err
		}
	}
	logger = logger.With().Str(log.KeyCustomerID, customer.ID.String()).Logger()
	logger.Info().Msgf("resolved customerId=%s", customer.ID.String())

	logger = logger.With().Str(log.KeyProcess, "creating order").Logger()
	logger.Info().Msg("creating order")
	items := make([]repository.CreateOrderItemParams, 0, len(current.Items))
	for _, item := range current.Items {
		price := cart.EffectivePrice(item.Product)
		items = append(items, repository.CreateOrderItemParams{
			ProductID:       item.Product.ID,
			ProductName:     item.Product.Name,
			ProductPrice:    price,
			Quantity:        int32(item.Quantity),
			SelectedVariant: item.SelectedVariant,
			Subtotal:        price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2),
		})
	}
	order, err := svc.store.CreateOrder(c, repository.CreateOrderParams{
		CustomerID:    customer.ID,
		CustomerName:  param.CustomerName,
		CustomerPhone: param.CustomerPhone,
		Address:       param.Address,
		City:          param.City,
		District:      param.District,
		TotalAmount:   current.TotalAmount,
		PaymentMethod: param.PaymentMethod,
		Notes:         param.Notes,
		Items:         items,
	})
	if err != nil {
		err = fmt.Errorf("failed creating order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().
		Str(log.KeyOrderID, order.ID.String()).
		Str(log.KeyOrderNumber, order.OrderNumber).
		Logger()
	logger.Info().Msgf("created order orderNumber=%s", order.OrderNumber)

	logger = logger.With().Str(log.KeyProcess, "clearing cart").Logger()
	logger.Info().Msg("clearing cart")
	c = logger.WithContext(c)
	manager.Clear(c)
	logger.Info().Msg("cleared cart")

	return order.Response()
}
