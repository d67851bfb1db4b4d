package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/internal/config"
	"github.com/temizmarket/eticaret/internal/constants"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/log"
)

func CreateToken(c context.Context, cfg config.Application) (string, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CreateToken").
		Logger()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    constants.AppAdminService,
		Subject:   "admin",
		Audience:  jwt.ClaimStrings{constants.AudienceAdmin},
		ExpiresAt: jwt.NewNumericDate(now.Add(12 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	logger = logger.With().Str(log.KeyProcess, "signing token").Logger()
	logger.Info().Msg("signing token")
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.SecretKey))
	if err != nil {
		err = fmt.Errorf("failed signing token with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return "", err
	}
	logger.Info().Msg("signed token")

	return signed, nil
}

func VerifyToken(c context.Context, token string, cfg config.Application) error {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "VerifyToken").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing claims").Logger()
	jwtToken, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(cfg.SecretKey), nil
		},
		jwt.WithAudience(constants.AudienceAdmin),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppAdminService),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing with claims with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("parsed claims")

	if !jwtToken.Valid {
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return inErrors.ErrTokenInvalid
	}

	return nil
}
