/*
Package tracing correlates bridge calls across the UI and privileged
processes.

# Overview

The terminal UI mints one trace ID per user action, so an operation and the
refresh that follows it share a trace; the server mints one when a request
arrives without it. IDs travel in HTTP headers (Inject on the client,
FromHeader in the middleware). Each finished span is
logged as one structured zap line carrying the trace ID, span ID, operation
name and duration.

# Usage

	tracer := tracing.New("bridge", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "fs:readDirectory")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Trace Format

- X-Trace-ID: identifier for the whole call
- X-Span-ID: identifier for the current operation

Spans are buffered (1000) and processed by one collector goroutine; a full
buffer drops spans instead of blocking the caller.
*/
package tracing
