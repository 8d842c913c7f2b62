package train_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/konbassmio/gearbox/train"
)

// TestAxisAllocator_StartsAtOne: fresh allocators issue shaft 1 first.
func TestAxisAllocator_StartsAtOne(t *testing.T) {
	a := train.NewAxisAllocator()
	assert.Equal(t, 1, a.Current())
}

// TestAxisAllocator_CommitAdvances: committing a higher cursor moves the
// sequence forward; lower values are ignored to keep it monotonic.
func TestAxisAllocator_CommitAdvances(t *testing.T) {
	a := train.NewAxisAllocator()

	a.Commit(4)
	assert.Equal(t, 4, a.Current())

	a.Commit(2)
	assert.Equal(t, 4, a.Current(), "stale commit must not rewind the cursor")

	a.Commit(4)
	assert.Equal(t, 4, a.Current(), "equal commit is a no-op")

	a.Commit(7)
	assert.Equal(t, 7, a.Current())
}
