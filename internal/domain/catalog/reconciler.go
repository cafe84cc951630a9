// internal/domain/catalog/reconciler.go
package catalog

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Source produces catalog items from one origin. Failures surface as an
// empty list, never an error.
type Source interface {
	Load(ctx context.Context) []Item
}

// Diagnostic source labels.
const (
	SourceLocal        = "LOCAL"
	SourceLocalRemote  = "LOCAL+GitHub"
	SourceLocalOffline = "LOCAL(Offline)"
)

// Result is one reconciliation pass: the deduplicated catalog plus a
// source label for diagnostics.
type Result struct {
	Items  []Item `json:"items"`
	Source string `json:"source"`
}

// Reconciler merges the bundled and remote catalogs into one deduplicated
// list and publishes it to the shared read cache.
type Reconciler struct {
	bundled Source
	remote  Source // nil when the remote catalog is disabled
	cache   *Cache
	logger  *logrus.Logger
}

// NewReconciler creates a reconciler. Pass a nil remote source to run
// bundled-only.
func NewReconciler(bundled, remote Source, cache *Cache, logger *logrus.Logger) *Reconciler {
	return &Reconciler{bundled: bundled, remote: remote, cache: cache, logger: logger}
}

// Reconcile combines the sources, bundled first so that on any conflict
// the bundled occurrence wins, deduplicates, and upserts the result into
// the read cache. It never fails; the worst case is the bundled list alone.
func (r *Reconciler) Reconcile(ctx context.Context) Result {
	combined := r.bundled.Load(ctx)
	source := SourceLocal

	if r.remote != nil {
		remoteItems := r.remote.Load(ctx)
		if len(remoteItems) > 0 {
			combined = append(combined, remoteItems...)
			source = SourceLocalRemote
		} else {
			source = SourceLocalOffline
		}
	}

	deduped := dedupe(combined)
	if removed := len(combined) - len(deduped); removed > 0 {
		r.logger.WithFields(logrus.Fields{
			"removed": removed,
			"final":   len(deduped),
		}).Debug("dropped duplicate catalog items")
	}

	r.cache.Update(deduped)
	r.logger.WithFields(logrus.Fields{
		"source": source,
		"total":  len(deduped),
	}).Debug("catalog reconciled")

	return Result{Items: deduped, Source: source}
}

// dedupe keeps an item only when both its id and its normalized
// (name, gender) pair are first-seen, so concatenation order is the
// tie-break rule. Every walked id is recorded, including ids of items
// dropped for a name collision, so a later reuse of that id loses too.
// The name key is only recorded for items whose id was first-seen.
func dedupe(items []Item) []Item {
	seenIDs := make(map[int]struct{}, len(items))
	seenNames := make(map[string]struct{}, len(items))
	kept := make([]Item, 0, len(items))

	for _, item := range items {
		_, idDup := seenIDs[item.ID]
		seenIDs[item.ID] = struct{}{}
		if idDup {
			continue
		}
		nameKey := item.NormalizedKey()
		if _, nameDup := seenNames[nameKey]; nameDup {
			continue
		}
		seenNames[nameKey] = struct{}{}
		kept = append(kept, item)
	}
	return kept
}
