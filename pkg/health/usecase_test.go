package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReadyWithoutCheckers(t *testing.T) {
	res, err := NewService().Ready(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestReadyReportsEveryChecker(t *testing.T) {
	down := errors.New("connection refused")
	res, err := NewService(
		stubChecker{name: "postgres", err: down},
		stubChecker{name: "sqlite"},
	).Ready(context.Background())

	assert.ErrorIs(t, err, down)
	assert.Contains(t, err.Error(), "postgres")
	assert.Equal(t, []CheckResult{
		{Name: "postgres", Err: "connection refused"},
		{Name: "sqlite"},
	}, res)
}
