package telemetry

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/semconv/v1.13.0/httpconv"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentRestyTracing starts an otel span for every request the client makes.
// It is a no-op in terms of export until Setup installs a tracer provider.
func InstrumentRestyTracing(client *resty.Client, tracerName string) {
	tracer := otel.Tracer(tracerName)

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), req.Method)
		req.SetContext(ctx)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		span := trace.SpanFromContext(res.Request.Context())
		defer span.End()

		// request attributes are set here since res.Request.RawRequest is nil in OnBeforeRequest
		span.SetName(fmt.Sprintf("http %s", res.Request.Method))
		span.SetAttributes(httpconv.ClientRequest(res.Request.RawRequest)...)
		span.SetAttributes(httpconv.ClientResponse(res.RawResponse)...)
		if res.IsError() {
			span.SetStatus(codes.Error, res.Status())
		}
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		span := trace.SpanFromContext(req.Context())
		defer span.End()

		span.SetName(fmt.Sprintf("http %s", req.Method))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if req.RawRequest != nil {
			span.SetAttributes(httpconv.ClientRequest(req.RawRequest)...)
		}
	})
}
