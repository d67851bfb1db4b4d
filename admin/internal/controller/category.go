package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

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

type CategoryController struct {
	service *service.CatalogService
}

func AttachCategoryController(router *mux.Router, service *service.CatalogService) {
	controller := CategoryController{service: service}

	subrouter := router.PathPrefix("/categories").Subrouter()
	subrouter.HandleFunc("", controller.FindCategories).Methods(http.MethodGet)
	subrouter.HandleFunc("", controller.InsertCategory).Methods(http.MethodPost)
	subrouter.HandleFunc("/{categoryId}", controller.FindCategoryById).Methods(http.MethodGet)
	subrouter.HandleFunc("/{categoryId}", controller.UpdateCategory).Methods(http.MethodPut)
	subrouter.HandleFunc("/{categoryId}", controller.DeleteCategory).Methods(http.MethodDelete)
}

func (t CategoryController) FindCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CategoryController FindCategories")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryController FindCategories").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding categories").Logger()
	logger.Info().Msg("finding categories")
	c = logger.WithContext(c)
	categories, err := t.service.FindCategories(c)
	if err != nil {
		err = fmt.Errorf("failed finding categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found categories")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "categories found",
		"data": map[string]interface{}{
			"categories": categories,
		},
	})
}

func (t CategoryController) FindCategoryById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CategoryController FindCategoryById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryController FindCategoryById").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating categoryId").Logger()
	logger.Info().Msg("validating categoryId")
	pathValues := mux.Vars(r)
	categoryId, err := uuid.Parse(pathValues["categoryId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating categoryId=%s with error=%w",
			pathValues["categoryId"],
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
	logger = logger.With().Str(log.KeyCategoryID, categoryId.String()).Logger()
	logger.Info().Msgf("validated categoryId=%s", categoryId.String())

	logger = logger.With().Str(log.KeyProcess, "finding category").Logger()
	logger.Info().Msg("finding category")
	c = logger.WithContext(c)
	category, err := t.service.FindCategoryById(c, categoryId)
	if err != nil {
		err = fmt.Errorf("failed finding categoryId=%s with error=%w", categoryId.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrCategoryNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found category")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "category found",
		"data": map[string]interface{}{
			"category": category,
		},
	})
}

func (t CategoryController) InsertCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CategoryController InsertCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryController InsertCategory").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := adminRequest.UpsertCategory{}
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

	logger = logger.With().Str(log.KeyProcess, "inserting category").Logger()
	logger.Info().Msg("inserting category")
	c = logger.WithContext(c)
	category, err := t.service.InsertCategory(c, reqBody)
	if err != nil {
		err = fmt.Errorf("failed inserting category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("inserted category")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusCreated,
		"message":    "category created",
		"data": map[string]interface{}{
			"category": category,
		},
	})
}

func (t CategoryController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CategoryController UpdateCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryController UpdateCategory").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating categoryId").Logger()
	logger.Info().Msg("validating categoryId")
	pathValues := mux.Vars(r)
	categoryId, err := uuid.Parse(pathValues["categoryId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating categoryId=%s with error=%w",
			pathValues["categoryId"],
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
	logger = logger.With().Str(log.KeyCategoryID, categoryId.String()).Logger()
	logger.Info().Msgf("validated categoryId=%s", categoryId.String())

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := adminRequest.UpsertCategory{}
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

	logger = logger.With().Str(log.KeyProcess, "updating category").Logger()
	logger.Info().Msg("updating category")
	c = logger.WithContext(c)
	category, err := t.service.UpdateCategory(c, categoryId, reqBody)
	if err != nil {
		err = fmt.Errorf("failed updating categoryId=%s with error=%w", categoryId.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrCategoryNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated category")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "category updated",
		"data": map[string]interface{}{
			"category": category,
		},
	})
}

func (t CategoryController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CategoryController DeleteCategory")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CategoryController DeleteCategory").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "validating categoryId").Logger()
	logger.Info().Msg("validating categoryId")
	pathValues := mux.Vars(r)
	categoryId, err := uuid.Parse(pathValues["categoryId"])
	if err != nil {
		err = fmt.Errorf(
			"failed validating categoryId=%s with error=%w",
			pathValues["categoryId"],
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
	logger = logger.With().Str(log.KeyCategoryID, categoryId.String()).Logger()
	logger.Info().Msgf("validated categoryId=%s", categoryId.String())

	logger = logger.With().Str(log.KeyProcess, "deleting category").Logger()
	logger.Info().Msg("deleting category")
	c = logger.WithContext(c)
	if err := t.service.DeleteCategory(c, categoryId); err != nil {
		err = fmt.Errorf("failed deleting categoryId=%s with error=%w", categoryId.String(), err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrCategoryNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("deleted category")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("categoryId=%s deleted", categoryId.String()),
	})
}
