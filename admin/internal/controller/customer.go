package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/admin/internal/otel"
	"github.com/temizmarket/eticaret/admin/internal/service"
	adminRequest "github.com/temizmarket/eticaret/admin/pkg/request"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	inHttp "github.com/temizmarket/eticaret/internal/http"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
)

type CustomerController struct {
	service *service.CustomerService
}

func AttachCustomerController(router *mux.Router, service *service.CustomerService) {
	controller := CustomerController{service: service}

	subrouter := router.PathPrefix("/customers").Subrouter()
	subrouter.HandleFunc("", controller.FindCustomers).Methods(http.MethodGet)
	subrouter.HandleFunc("/{customerId}", controller.FindCustomerById).Methods(http.MethodGet)
	subrouter.HandleFunc("/{customerId}", controller.UpdateCustomer).Methods(http.MethodPut)
}

func (t CustomerController) FindCustomers(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CustomerController FindCustomers")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerController FindCustomers").
		Logger()

	var limit, offset int32
	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err == nil && parsed > 0 {
			limit = int32(parsed)
		}
	}
	if raw := query.Get("offset"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err == nil && parsed > 0 {
			offset = int32(parsed)
		}
	}

	logger = logger.With().Str(log.KeyProcess, "finding customers").Logger()
	logger.Info().Msg("finding customers")
	c = logger.WithContext(c)
	customers, err := t.service.FindCustomers(c, limit, offset)
	if err != nil {
		err = fmt.Errorf("failed finding customers with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found customers")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "customers found",
		"data": map[string]interface{}{
			"customers": customers,
		},
	})
}

func (t CustomerController) FindCustomerById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CustomerController FindCustomerById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerController FindCustomerById").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating customerId").Logger()
	logger.Info().Msg("validating customerId")
	pathValues := mux.Vars(r)
	customerId, err := uuid.Parse(pathValues["customerId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating customerId=%s with error=%w",
			pathValues["customerId"],
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCustomerID, customerId.String()).Logger()
	logger.Info().Msgf("validated customerId=%s", customerId.String())

	logger = logger.With().Str(log.KeyProcess, "finding customer").Logger()
	logger.Info().Msg("finding customer")
	c = logger.WithContext(c)
	customer, err := t.service.FindCustomerById(c, customerId)
	if err != nil {
		err = fmt.Errorf(
			"failed finding customerId=%s with error=%w",
			customerId.String(),
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrCustomerNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found customer")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("customerId=%s found", customerId.String()),
		"data": map[string]interface{}{
			"customer": customer,
		},
	})
}

func (t CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CustomerController UpdateCustomer")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CustomerController UpdateCustomer").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating customerId").Logger()
	logger.Info().Msg("validating customerId")
	pathValues := mux.Vars(r)
	customerId, err := uuid.Parse(pathValues["customerId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating customerId=%s with error=%w",
			pathValues["customerId"],
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger = logger.With().Str(log.KeyCustomerID, customerId.String()).Logger()
	logger.Info().Msgf("validated customerId=%s", customerId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := adminRequest.UpsertCustomer{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		err = fmt.Errorf("failed decoding request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("decoded request body")

	logger = logger.With().Str(log.KeyProcess, "validating requestbody").Logger()
	logger.Info().Msg("validating request body")
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.StructCtx(c, reqBody); err != nil {
		err = fmt.Errorf("failed validating request body with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusBadRequest,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("validated request body")

	logger = logger.With().Str(log.KeyProcess, "updating customer").Logger()
	logger.Info().Msg("updating customer")
	c = logger.WithContext(c)
	customer, err := t.service.UpdateCustomer(c, customerId, reqBody)
	if err != nil {
		err = fmt.Errorf(
			"failed updating customerId=%s with error=%w",
			customerId.String(),
			err,
		)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrCustomerNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated customer")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "customer updated",
		"data": map[string]interface{}{
			"customer": customer,
		},
	})
}
