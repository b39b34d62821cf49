package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoQuery struct {
	Value string
}

func (q echoQuery) Key() string { return "test.echo" }

type echoHandler struct {
	err error
}

func (h *echoHandler) Handle(ctx context.Context, q echoQuery) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return q.Value, nil
}

func TestAskRoutesToRegisteredHandler(t *testing.T) {
	bus := NewInMemoryBus()
	Register[echoQuery, string](bus, echoQuery{}.Key(), &echoHandler{})

	got, err := Ask[echoQuery, string](context.Background(), bus, echoQuery{Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestAskUnregisteredQuery(t *testing.T) {
	bus := NewInMemoryBus()
	_, err := Ask[echoQuery, string](context.Background(), bus, echoQuery{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestAskPropagatesHandlerError(t *testing.T) {
	bus := NewInMemoryBus()
	boom := errors.New("boom")
	Register[echoQuery, string](bus, echoQuery{}.Key(), &echoHandler{err: boom})

	_, err := Ask[echoQuery, string](context.Background(), bus, echoQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestAskNilBus(t *testing.T) {
	_, err := Ask[echoQuery, string](context.Background(), nil, echoQuery{})
	assert.ErrorIs(t, err, ErrNilBus)
}

func TestAskResultTypeMismatch(t *testing.T) {
	bus := NewInMemoryBus()
	Register[echoQuery, string](bus, echoQuery{}.Key(), &echoHandler{})

	_, err := Ask[echoQuery, int](context.Background(), bus, echoQuery{Value: "hello"})
	assert.ErrorIs(t, err, ErrResultType)
}
