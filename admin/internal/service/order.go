package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/admin/internal/otel"
	adminRequest "github.com/temizmarket/eticaret/admin/pkg/request"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/pkg/response"
)

const dashboardPendingLimit = 5

type OrderService struct {
	queries *repository.Queries
}

func NewOrderService(queries *repository.Queries) OrderService {
	return OrderService{queries: queries}
}

func (svc OrderService) FindOrders(
	c context.Context,
	param repository.FindOrdersParams,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Logger()

	logger.Info().Msg("finding orders")
	c = logger.WithContext(c)
	rows, err := svc.queries.FindOrders(c, param)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	orders := make([]response.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.Response()
		if err != nil {
			err = fmt.Errorf("failed mapping orderId=%s with error=%w", row.ID.String(), err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		orders = append(orders, order)
	}
	logger.Info().Msgf("found %d orders", len(orders))

	return orders, nil
}

func (svc OrderService) FindOrderById(c context.Context, id uuid.UUID) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, id.String()).
		Logger()

	logger.Info().Msg("finding order")
	c = logger.WithContext(c)
	row, err := svc.queries.FindOrderById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding orderId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order")

	return row.Response()
}

func (svc OrderService) UpdateOrderStatus(
	c context.Context,
	id uuid.UUID,
	param adminRequest.UpdateOrderStatus,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService UpdateOrderStatus")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService UpdateOrderStatus").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyOrderStatus, param.Status).
		Logger()

	logger.Info().Msgf("updating order status to %s", param.Status)
	c = logger.WithContext(c)
	row, err := svc.queries.UpdateOrderStatus(c, repository.UpdateOrderStatusParams{
		ID:         id,
		Status:     param.Status,
		AdminNotes: param.AdminNotes,
	})
	if err != nil {
		err = fmt.Errorf("failed updating orderId=%s status with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("updated order status")

	return row.Response()
}

func (svc OrderService) FindDashboardStats(c context.Context) (response.DashboardStats, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindDashboardStats")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindDashboardStats").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding order stats").Logger()
	logger.Info().Msg("finding order stats")
	c = logger.WithContext(c)
	stats, err := svc.queries.FindDashboardStats(c)
	if err != nil {
		err = fmt.Errorf("failed finding dashboard stats with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.DashboardStats{}, err
	}
	logger.Info().Msg("found order stats")

	logger = logger.With().Str(log.KeyProcess, "finding latest pending orders").Logger()
	logger.Info().Msg("finding latest pending orders")
	rows, err := svc.queries.FindLatestPendingOrders(c, dashboardPendingLimit)
	if err != nil {
		err = fmt.Errorf("failed finding latest pending orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.DashboardStats{}, err
	}
	pending := make([]response.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.Response()
		if err != nil {
			err = fmt.Errorf("failed mapping orderId=%s with error=%w", row.ID.String(), err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.DashboardStats{}, err
		}
		pending = append(pending, order)
	}
	logger.Info().Msgf("found %d latest pending orders", len(pending))

	return stats.Response(pending), nil
}
