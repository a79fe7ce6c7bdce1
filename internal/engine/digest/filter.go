package digest

import "github.com/quilldb/dbdigest/internal/core/domain"

// CollectionFilter decides whether a collection participates in the digest.
// Pure decision logic; the capped side effect is handled by the caller so the
// filter stays stateless.
type CollectionFilter struct {
	include  map[string]struct{}
	skipTemp bool
}

// NewCollectionFilter builds a filter from the request options.
func NewCollectionFilter(req domain.DigestRequest) *CollectionFilter {
	return &CollectionFilter{
		include:  req.CollectionSet(),
		skipTemp: req.SkipTempCollections,
	}
}

// ShouldInclude applies the exclusion rules in precedence order.
func (f *CollectionFilter) ShouldInclude(desc domain.CollectionDescriptor) bool {
	// Non-replicated namespaces (the operation log itself among them) can
	// never agree across replicas.
	if desc.NotReplicated {
		return false
	}

	// Legacy incremental-aggregation scratch collections are not replicated
	// either.
	if desc.Namespace.IsTempAggregation() {
		return false
	}

	if f.skipTemp && desc.Temporary {
		return false
	}

	if f.include != nil {
		if _, ok := f.include[desc.Namespace.Collection]; !ok {
			return false
		}
	}

	// Drop-pending collections are scheduled for deferred physical removal.
	if desc.DropPending {
		return false
	}

	return true
}
