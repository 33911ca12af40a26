package core

import (
	"context"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

func newObservedRuntime(t *testing.T) (*Runtime, *captureMetricsRecorder, *captureLogger) {
	t.Helper()
	metrics := &captureMetricsRecorder{}
	logger := newCaptureLogger()
	rt, err := NewRuntime(validConfig(),
		WithMetricsRecorder(metrics),
		WithLoggerProvider(stubLoggerProvider{logger: logger}),
		WithLogger(logger),
	)
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	return rt, metrics, logger
}

func TestRuntimeObserve_Success(t *testing.T) {
	rt, metrics, logger := newObservedRuntime(t)

	rt.Observe(context.Background(), time.Now(), "seller.find_by_id", nil, map[string]any{
		"resource": "seller",
		"account":  "acme",
	})

	if !hasCounter(metrics.counters, "vtex.seller_find_by_id.total", "success") {
		t.Fatalf("expected vtex.seller_find_by_id.total success counter")
	}
	if !hasHistogram(metrics.histograms, "vtex.seller_find_by_id.duration_ms", "success") {
		t.Fatalf("expected vtex.seller_find_by_id.duration_ms histogram")
	}
	if metrics.counters[0].tags["resource"] != "seller" || metrics.counters[0].tags["account"] != "acme" {
		t.Fatalf("expected resource and account tags, got %#v", metrics.counters[0].tags)
	}
	if !hasLog(logger.snapshot(), "info", "seller_find_by_id succeeded", "seller_find_by_id") {
		t.Fatalf("expected seller_find_by_id succeeded structured log")
	}
}

func TestRuntimeObserve_FailureEnrichesStructuredErrorFields(t *testing.T) {
	rt, metrics, logger := newObservedRuntime(t)

	rt.Observe(context.Background(), time.Now(), "cluster.find_by_id", NotFoundError("cluster", "ghost"), nil)

	if !hasCounter(metrics.counters, "vtex.cluster_find_by_id.total", "failure") {
		t.Fatalf("expected failure counter")
	}
	logs := logger.snapshot()
	if !hasLog(logs, "error", "cluster_find_by_id failed", "cluster_find_by_id") {
		t.Fatalf("expected failure log, got %#v", logs)
	}
	last := logs[len(logs)-1]
	if last.fields["error_text_code"] != ServiceErrorNotFound {
		t.Fatalf("expected error_text_code field, got %#v", last.fields["error_text_code"])
	}
	if last.fields["error_category"] != string(goerrors.CategoryNotFound) {
		t.Fatalf("expected error_category field, got %#v", last.fields["error_category"])
	}
}

func TestRuntimeDebug_WritesDebugLine(t *testing.T) {
	rt, _, logger := newObservedRuntime(t)
	rt.Debug(context.Background(), "seller cache miss", map[string]any{"id": "5"})

	for _, item := range logger.snapshot() {
		if item.level == "debug" && item.msg == "seller cache miss" && item.fields["id"] == "5" {
			return
		}
	}
	t.Fatalf("expected debug log line")
}

func TestRuntimeObserve_NilRuntimeIsSafe(t *testing.T) {
	var rt *Runtime
	rt.Observe(context.Background(), time.Now(), "seller.search", nil, nil)
	rt.Debug(context.Background(), "ignored", nil)
}
