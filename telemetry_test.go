package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := tracer
	tracer = provider.Tracer("test")
	t.Cleanup(func() {
		tracer = previous
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func spanAttributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

type line struct{ length int }

func (l line) StartState() int   { return 0 }
func (l line) IsGoal(n int) bool { return n == l.length }
func (l line) Successors(n int) []Successor[int, string] {
	if n >= l.length {
		return nil
	}
	return []Successor[int, string]{{State: n + 1, Action: "next", Cost: 2}}
}
func (l line) CostOfActions(actions []string) (float64, error) {
	return 2 * float64(len(actions)), nil
}

func TestSolve_RecordsSpan(t *testing.T) {
	recorder := recordSpans(t)

	result, err := Solve(context.Background(), UniformCost, Problem[int, string](line{length: 3}), nil)
	require.NoError(t, err)
	require.True(t, result.Found)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "search.Solve", spans[0].Name())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)

	attrs := spanAttributes(spans[0])
	assert.Equal(t, "ucs", attrs["search.strategy"].AsString())
	assert.True(t, attrs["search.found"].AsBool())
	assert.Equal(t, 6.0, attrs["search.cost"].AsFloat64())
	assert.EqualValues(t, 3, attrs["search.expanded"].AsInt64())
	assert.EqualValues(t, 4, attrs["search.generated"].AsInt64())
}

func TestSolve_SpanRecordsError(t *testing.T) {
	recorder := recordSpans(t)

	_, err := Solve(context.Background(), BreadthFirst, Problem[int, string](line{length: 100}), nil,
		WithMaxExpansions(5))
	require.ErrorIs(t, err, ErrExpansionLimit)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Status().Description, "expansion limit")
	assert.False(t, spanAttributes(spans[0])["search.found"].AsBool())

	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
