package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
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

type SettingController struct {
	service *service.SettingService
}

func AttachSettingController(router *mux.Router, service *service.SettingService) {
	controller := SettingController{service: service}

	subrouter := router.PathPrefix("/settings").Subrouter()
	subrouter.HandleFunc("", controller.FindSettings).Methods(http.MethodGet)
	subrouter.HandleFunc("/{key}", controller.FindSettingByKey).Methods(http.MethodGet)
	subrouter.HandleFunc("/{key}", controller.UpdateSettingByKey).Methods(http.MethodPut)
}

func (t SettingController) FindSettings(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SettingController FindSettings")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SettingController FindSettings").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding settings").Logger()
	logger.Info().Msg("finding settings")
	c = logger.WithContext(c)
	settings, err := t.service.FindSettings(c)
	if err != nil {
		err = fmt.Errorf("failed finding settings with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found settings")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "settings found",
		"data": map[string]interface{}{
			"settings": settings,
		},
	})
}

func (t SettingController) FindSettingByKey(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SettingController FindSettingByKey")
	defer span.End()

	key := mux.Vars(r)["key"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SettingController FindSettingByKey").
		Str(log.KeySettingKey, key).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding setting").Logger()
	logger.Info().Msg("finding setting")
	c = logger.WithContext(c)
	setting, err := t.service.FindSettingByKey(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding settingKey=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		statusCode := http.StatusInternalServerError
		if errors.Is(err, inErrors.ErrSettingNotFound) {
			statusCode = http.StatusNotFound
		}
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": statusCode,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("found setting")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("settingKey=%s found", key),
		"data": map[string]interface{}{
			"setting": setting,
		},
	})
}

func (t SettingController) UpdateSettingByKey(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "SettingController UpdateSettingByKey")
	defer span.End()

	key := mux.Vars(r)["key"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SettingController UpdateSettingByKey").
		Str(log.KeySettingKey, key).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "decoding requestbody").Logger()
	logger.Info().Msg("decoding requestbody")
	reqBody := adminRequest.UpdateSetting{}
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

	logger = logger.With().Str(log.KeyProcess, "updating setting").Logger()
	logger.Info().Msg("updating setting")
	c = logger.WithContext(c)
	setting, err := t.service.UpdateSettingByKey(c, key, reqBody.Value)
	if err != nil {
		err = fmt.Errorf("failed updating settingKey=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
			"status":     "failed",
			"statusCode": http.StatusInternalServerError,
			"message":    err.Error(),
		})
		return
	}
	logger.Info().Msg("updated setting")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "setting updated",
		"data": map[string]interface{}{
			"setting": setting,
		},
	})
}
