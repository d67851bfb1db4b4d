package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/temizmarket/eticaret/internal/constants"
)

var Tracer trace.Tracer = otel.Tracer(constants.AppStorefrontService)
