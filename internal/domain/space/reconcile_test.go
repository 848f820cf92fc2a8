//go:build unit

package space_test

import (
	"testing"

	"parkspace/internal/domain/space"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func existingProduct(t *testing.T, spaceID uuid.UUID, typ space.ProductType, name string, price int64) space.Product {
	t.Helper()
	p, err := space.NewProduct(spaceID, typ, name, price)
	require.NoError(t, err)
	return p
}

func TestReconcileProducts(t *testing.T) {
	spaceID := uuid.New()

	t.Run("all new products are created", func(t *testing.T) {
		plan, err := space.ReconcileProducts(spaceID, nil, []space.ProductPatch{
			{Type: space.ProductHourly, Name: "Hourly", Price: 1000},
			{Type: space.ProductDayPass, Name: "Day pass", Price: 8000},
		})
		require.NoError(t, err)
		assert.Len(t, plan.Create, 2)
		assert.Empty(t, plan.Update)
		assert.Empty(t, plan.Deactivate)
	})

	t.Run("match by id updates in place", func(t *testing.T) {
		current := existingProduct(t, spaceID, space.ProductHourly, "Hourly", 1000)

		plan, err := space.ReconcileProducts(spaceID, []space.Product{current}, []space.ProductPatch{
			{ID: &current.ID, Type: space.ProductHourly, Name: "Hourly v2", Price: 1200},
		})
		require.NoError(t, err)
		require.Len(t, plan.Update, 1)
		assert.Equal(t, current.ID, plan.Update[0].ID)
		assert.Equal(t, "Hourly v2", plan.Update[0].Name)
		assert.Equal(t, int64(1200), plan.Update[0].Price)
		assert.Empty(t, plan.Create)
		assert.Empty(t, plan.Deactivate)
	})

	t.Run("match by type when id absent", func(t *testing.T) {
		current := existingProduct(t, spaceID, space.ProductHourly, "Hourly", 1000)

		plan, err := space.ReconcileProducts(spaceID, []space.Product{current}, []space.ProductPatch{
			{Type: space.ProductHourly, Name: "Hourly", Price: 1500},
		})
		require.NoError(t, err)
		require.Len(t, plan.Update, 1)
		assert.Equal(t, current.ID, plan.Update[0].ID)
		assert.Equal(t, int64(1500), plan.Update[0].Price)
	})

	t.Run("unmatched current rows are deactivated not deleted", func(t *testing.T) {
		hourly := existingProduct(t, spaceID, space.ProductHourly, "Hourly", 1000)
		dayPass := existingProduct(t, spaceID, space.ProductDayPass, "Day pass", 8000)

		plan, err := space.ReconcileProducts(spaceID, []space.Product{hourly, dayPass}, []space.ProductPatch{
			{Type: space.ProductHourly, Name: "Hourly", Price: 1000},
		})
		require.NoError(t, err)
		require.Len(t, plan.Deactivate, 1)
		assert.Equal(t, dayPass.ID, plan.Deactivate[0].ID)
		assert.False(t, plan.Deactivate[0].IsActive)
	})

	t.Run("matching reactivates a soft-deleted row", func(t *testing.T) {
		inactive := existingProduct(t, spaceID, space.ProductDayPass, "Day pass", 8000)
		inactive.IsActive = false

		plan, err := space.ReconcileProducts(spaceID, []space.Product{inactive}, []space.ProductPatch{
			{Type: space.ProductDayPass, Name: "Day pass", Price: 9000},
		})
		require.NoError(t, err)
		require.Len(t, plan.Update, 1)
		assert.True(t, plan.Update[0].IsActive)
		assert.Equal(t, int64(9000), plan.Update[0].Price)
	})

	t.Run("already inactive unmatched rows stay untouched", func(t *testing.T) {
		inactive := existingProduct(t, spaceID, space.ProductHourly, "Hourly", 1000)
		inactive.IsActive = false

		plan, err := space.ReconcileProducts(spaceID, []space.Product{inactive}, nil)
		require.NoError(t, err)
		assert.Empty(t, plan.Deactivate)
	})

	t.Run("second patch of the same type creates instead of double-matching", func(t *testing.T) {
		current := existingProduct(t, spaceID, space.ProductHourly, "Hourly", 1000)

		plan, err := space.ReconcileProducts(spaceID, []space.Product{current}, []space.ProductPatch{
			{Type: space.ProductHourly, Name: "Hourly A", Price: 1000},
			{Type: space.ProductHourly, Name: "Hourly B", Price: 2000},
		})
		require.NoError(t, err)
		assert.Len(t, plan.Update, 1)
		assert.Len(t, plan.Create, 1)
	})

	t.Run("invalid patch type", func(t *testing.T) {
		_, err := space.ReconcileProducts(spaceID, nil, []space.ProductPatch{
			{Type: space.ProductType("WEEKLY"), Name: "Weekly", Price: 100},
		})
		require.ErrorIs(t, err, space.ErrInvalidProduct)
	})

	t.Run("negative patch price", func(t *testing.T) {
		_, err := space.ReconcileProducts(spaceID, nil, []space.ProductPatch{
			{Type: space.ProductHourly, Name: "Hourly", Price: -5},
		})
		require.ErrorIs(t, err, space.ErrNegativePrice)
	})
}
