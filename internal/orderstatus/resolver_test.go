package orderstatus_test

import (
	"testing"

	"go-quickgas/internal/orderstatus"

	"github.com/stretchr/testify/assert"
)

func TestNewResolver(t *testing.T) {
	t.Run("Resolves Seeded Ids", func(t *testing.T) {
		r, err := orderstatus.NewResolver(map[string]uint{
			orderstatus.StatusPending:        4,
			orderstatus.StatusOutForDelivery: 7,
			orderstatus.StatusCompleted:      9,
			orderstatus.StatusCancelled:      12,
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(4), r.Pending())
		assert.Equal(t, uint(7), r.OutForDelivery())
		assert.Equal(t, uint(9), r.Completed())

		id, ok := r.ID(orderstatus.StatusCancelled)
		assert.True(t, ok)
		assert.Equal(t, uint(12), id)
	})

	t.Run("Missing Canonical Status", func(t *testing.T) {
		_, err := orderstatus.NewResolver(map[string]uint{
			orderstatus.StatusPending: 1,
		})
		assert.Error(t, err)
	})
}
