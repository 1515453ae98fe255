package e_test

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := e.Wrap("CatalogUseCase.UpsertProduct", e.NewValidationError("name", "is required"))

	require.ErrorIs(t, err, e.ErrValidation)
	require.Equal(t, "CatalogUseCase.UpsertProduct: name: is required", err.Error())

	var vErr *e.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Equal(t, "name", vErr.Field)
}

func TestWrapKeepsSentinel(t *testing.T) {
	err := e.Wrap("outer", e.Wrap("inner", e.ErrNotFound))

	require.ErrorIs(t, err, e.ErrNotFound)
	require.NotErrorIs(t, err, e.ErrValidation)
}
