package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithRequestTagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := WithRequest(context.Background(), base, "req-123")
	if got := RequestID(ctx); got != "req-123" {
		t.Fatalf("expected request id in context, got %q", got)
	}

	logger := FromContext(ctx, zerolog.Nop())
	logger.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-123"`) {
		t.Fatalf("expected request_id field, got %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Fatalf("expected message field, got %s", out)
	}
}

func TestFromContextFallsBack(t *testing.T) {
	var buf bytes.Buffer
	fallback := zerolog.New(&buf)

	logger := FromContext(context.Background(), fallback)
	logger.Info().Msg("fallback")

	if !strings.Contains(buf.String(), "fallback") {
		t.Fatalf("expected fallback logger to be used, got %q", buf.String())
	}
}

func TestWithRequestWithoutID(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithRequest(context.Background(), zerolog.New(&buf), "")

	if RequestID(ctx) != "" {
		t.Fatalf("expected no request id")
	}

	logger := FromContext(ctx, zerolog.Nop())
	logger.Info().Msg("no id")

	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("did not expect request_id field, got %s", buf.String())
	}
}
