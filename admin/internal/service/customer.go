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

type CustomerService struct {
	queries *repository.Queries
}

func NewCustomerService(queries *repository.Queries) CustomerService {
	return CustomerService{queries: queries}
}

func (svc CustomerService) FindCustomers(
	c context.Context,
	limit int32,
	offset int32,
) ([]response.Customer, error) {
	c, span := otel.Tracer.Start(c, "CustomerService FindCustomers")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerService FindCustomers").
		Logger()

	logger.Info().Msg("finding customers")
	c = logger.WithContext(c)
	rows, err := svc.queries.FindCustomers(c, limit, offset)
	if err != nil {
		err = fmt.Errorf("failed finding customers with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	customers := make([]response.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, row.Response())
	}
	logger.Info().Msgf("found %d customers", len(customers))

	return customers, nil
}

func (svc CustomerService) FindCustomerById(
	c context.Context,
	id uuid.UUID,
) (response.Customer, error) {
	c, span := otel.Tracer.Start(c, "CustomerService FindCustomerById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerService FindCustomerById").
		Str(log.KeyCustomerID, id.String()).
		Logger()

	logger.Info().Msg("finding customer")
	c = logger.WithContext(c)
	row, err := svc.queries.FindCustomerById(c, id)
	if err != nil {
		err = fmt.Errorf("failed finding customerId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Customer{}, err
	}
	logger.Info().Msg("found customer")

	return row.Response(), nil
}

func (svc CustomerService) UpdateCustomer(
	c context.Context,
	id uuid.UUID,
	param adminRequest.UpsertCustomer,
) (response.Customer, error) {
	c, span := otel.Tracer.Start(c, "CustomerService UpdateCustomer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerService UpdateCustomer").
		Str(log.KeyCustomerID, id.String()).
		Logger()

	logger.Info().Msg("updating customer")
	c = logger.WithContext(c)
	row, err := svc.queries.UpdateCustomer(c, repository.UpsertCustomerParams{
		ID:       id,
		Name:     param.Name,
		Phone:    param.Phone,
		Email:    param.Email,
		Address:  param.Address,
		City:     param.City,
		District: param.District,
		Notes:    param.Notes,
	})
	if err != nil {
		err = fmt.Errorf("failed updating customerId=%s with error=%w", id.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Customer{}, err
	}
	logger.Info().Msg("updated customer")

	return row.Response(), nil
}
