package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/admin/internal/otel"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/pkg/response"
)

const cacheKeySettings = "storefront:settings"

type SettingService struct {
	queries *repository.Queries
	cache   *redis.Client
}

func NewSettingService(queries *repository.Queries, cache *redis.Client) SettingService {
	return SettingService{queries: queries, cache: cache}
}

func (svc SettingService) FindSettings(c context.Context) ([]response.Setting, error) {
	c, span := otel.Tracer.Start(c, "SettingService FindSettings")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SettingService FindSettings").
		Logger()

	logger.Info().Msg("finding settings")
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
	logger.Info().Msgf("found %d settings", len(settings))

	return settings, nil
}

func (svc SettingService) FindSettingByKey(c context.Context, key string) (response.Setting, error) {
	c, span := otel.Tracer.Start(c, "SettingService FindSettingByKey")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SettingService FindSettingByKey").
		Str(log.KeySettingKey, key).
		Logger()

	logger.Info().Msg("finding setting")
	c = logger.WithContext(c)
	row, err := svc.queries.FindSettingByKey(c, key)
	if err != nil {
		err = fmt.Errorf("failed finding settingKey=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Setting{}, err
	}
	logger.Info().Msg("found setting")

	return row.Response(), nil
}

func (svc SettingService) UpdateSettingByKey(
	c context.Context,
	key string,
	value []byte,
) (response.Setting, error) {
	c, span := otel.Tracer.Start(c, "SettingService UpdateSettingByKey")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SettingService UpdateSettingByKey").
		Str(log.KeySettingKey, key).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating setting").Logger()
	logger.Info().Msg("updating setting")
	c = logger.WithContext(c)
	row, err := svc.queries.UpdateSettingByKey(c, key, value)
	if err != nil {
		err = fmt.Errorf("failed updating settingKey=%s with error=%w", key, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Setting{}, err
	}
	logger.Info().Msg("updated setting")

	logger = logger.With().Str(log.KeyProcess, "invalidating settings cache").Logger()
	logger.Info().Str(log.KeyCacheKey, cacheKeySettings).Msg("invalidating settings cache")
	if err := svc.cache.Del(c, cacheKeySettings).Err(); err != nil {
		err = fmt.Errorf("failed invalidating settings cache with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("invalidated settings cache")

	return row.Response(), nil
}
