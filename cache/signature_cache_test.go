package signature_cache

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

func testSignature(name string) *models.CatalogSignature {
	return &models.CatalogSignature{
		Categories: []models.CategorySummary{{ID: uuid.Must(uuid.NewV7()), Name: name, Slug: name}},
		Attributes: map[uuid.UUID][]models.AttributeSignature{},
	}
}

func TestSetThenGetReturnsSameSnapshot(t *testing.T) {
	t.Cleanup(Invalidate)

	sig := testSignature("Phone")
	Set(sig)

	got, ok := Get()
	require.True(t, ok)
	assert.Same(t, sig, got)
}

func TestInvalidateDropsSnapshot(t *testing.T) {
	t.Cleanup(Invalidate)

	Set(testSignature("Phone"))
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}

func TestGetOnColdCacheMisses(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}

// Readers racing a refresh must always see a whole snapshot, never a
// partially updated one.
func TestConcurrentSwapsServeWholeSnapshots(t *testing.T) {
	t.Cleanup(Invalidate)

	Set(testSignature("seed"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Set(testSignature("swap"))
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if sig, ok := Get(); ok {
					assert.Len(t, sig.Categories, 1)
				}
			}
		}()
	}
	wg.Wait()
}
