package signature_cache

import (
	"sync/atomic"
	"time"

	"github.com/prvnlhr/nexop-backend-sub001/models"
)

const TTL = 5 * time.Minute

// ── Catalog signature snapshot ───────────────────────────────────────────────
// One immutable signature shared by every query resolution. A refresh builds
// a complete replacement and swaps the pointer in one step, so concurrent
// readers never observe a half-updated signature.

type signatureEntry struct {
	signature *models.CatalogSignature
	fetchedAt time.Time
}

var current atomic.Pointer[signatureEntry]

// Get returns the cached signature if one is present and fresh.
func Get() (*models.CatalogSignature, bool) {
	entry := current.Load()
	if entry != nil && time.Since(entry.fetchedAt) < TTL {
		return entry.signature, true
	}
	return nil, false
}

// Set swaps in a freshly built signature. The signature must not be
// mutated after it is handed over.
func Set(signature *models.CatalogSignature) {
	current.Store(&signatureEntry{
		signature: signature,
		fetchedAt: time.Now(),
	})
}

// Invalidate drops the snapshot (call on any catalog mutation).
func Invalidate() {
	current.Store(nil)
}
