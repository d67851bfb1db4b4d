package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/temizmarket/eticaret/internal/constants"
)

var Tracer = otel.Tracer(constants.AppMainEticaret)
