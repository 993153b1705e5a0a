package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	t.Run("creates valid page", func(t *testing.T) {
		page, err := queries.NewPageRequest(3, 25)

		require.NoError(t, err)
		assert.Equal(t, 3, page.Number())
		assert.Equal(t, 25, page.Size())
		assert.Equal(t, 50, page.Offset())
	})

	t.Run("defaults size when unspecified", func(t *testing.T) {
		page, err := queries.NewPageRequest(1, 0)

		require.NoError(t, err)
		assert.Equal(t, queries.DefaultPageSize, page.Size())
		assert.Equal(t, 0, page.Offset())
	})

	t.Run("rejects non-positive page number", func(t *testing.T) {
		_, err := queries.NewPageRequest(0, 10)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects oversized pages", func(t *testing.T) {
		_, err := queries.NewPageRequest(1, queries.MaxPageSize+1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
