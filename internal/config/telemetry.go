package config

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// InitTracer OpenTelemetryのトレーサーを初期化し、終了処理を返す
func InitTracer(ctx context.Context, cfg *Config) (func(context.Context) error, error) {
	if cfg.Telemetry.Endpoint == "" {
		log.Println("OTEL_EXPORTER_OTLP_ENDPOINT が未設定のためトレースは無効です")
		return func(context.Context) error { return nil }, nil
	}

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Telemetry.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.Telemetry.ServiceName),
		attribute.String("deployment.environment", cfg.Telemetry.Environment),
	))
	if err != nil {
		return nil, err
	}

	ratio := cfg.Telemetry.SampleRatio
	if ratio < 0 || ratio > 1 {
		ratio = 1
	}

	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	log.Printf("トレースを送信します: %s (service=%s)", cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	return tp.Shutdown, nil
}
