package postgres

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrackedAggregates(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		uow := NewGormUnitOfWorkFactory(nil).Create().(*GormUnitOfWork)

		assert.Empty(t, uow.GetTrackedAggregates())
	})

	t.Run("returns tracked aggregates in tracking order", func(t *testing.T) {
		uow := NewGormUnitOfWorkFactory(nil).Create().(*GormUnitOfWork)

		firstID := kernel.NewUUID()
		secondID := kernel.NewUUID()
		first := struct{ name string }{"first"}
		second := struct{ name string }{"second"}

		uow.TrackAggregate(firstID, first)
		uow.TrackAggregate(secondID, second)

		tracked := uow.GetTrackedAggregates()
		require.Len(t, tracked, 2)
		assert.True(t, tracked[0].ID.IsEqual(firstID))
		assert.Equal(t, first, tracked[0].Aggregate)
		assert.True(t, tracked[1].ID.IsEqual(secondID))
		assert.Equal(t, second, tracked[1].Aggregate)
	})

	t.Run("each unit of work tracks independently", func(t *testing.T) {
		factory := NewGormUnitOfWorkFactory(nil)
		one := factory.Create().(*GormUnitOfWork)
		two := factory.Create().(*GormUnitOfWork)

		one.TrackAggregate(kernel.NewUUID(), "aggregate")

		assert.Len(t, one.GetTrackedAggregates(), 1)
		assert.Empty(t, two.GetTrackedAggregates())
	})
}
