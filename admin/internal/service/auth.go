package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/temizmarket/eticaret/admin/internal/otel"
	"github.com/temizmarket/eticaret/internal/config"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/log"
	inOtel "github.com/temizmarket/eticaret/internal/otel"
	"github.com/temizmarket/eticaret/internal/token"
)

type AuthService struct {
	cfg config.Application
}

func NewAuthService(cfg config.Application) AuthService {
	return AuthService{cfg: cfg}
}

func (svc AuthService) Login(c context.Context, password string) (string, error) {
	c, span := otel.Tracer.Start(c, "AuthService Login")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "AuthService Login").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "verifying password").Logger()
	logger.Info().Msg("verifying password")
	err := bcrypt.CompareHashAndPassword([]byte(svc.cfg.AdminPasswordHash), []byte(password))
	if err != nil {
		err = inErrors.ErrWrongPassword
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("verified password")

	logger = logger.With().Str(log.KeyProcess, "creating token").Logger()
	logger.Info().Msg("creating token")
	c = logger.WithContext(c)
	jwtToken, err := token.CreateToken(c, svc.cfg)
	if err != nil {
		err = fmt.Errorf("failed creating token with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("created token")

	return jwtToken, nil
}
