package domain

import "strings"

// tempAggregationPrefix marks scratch collections left behind by the legacy
// incremental aggregation pipeline. They are never replicated, so they can
// never participate in a cross-replica digest.
const tempAggregationPrefix = "tmp.agg."

// Namespace identifies a collection within a database.
type Namespace struct {
	DB         string
	Collection string
}

// NewNamespace builds a namespace from its two parts.
func NewNamespace(db, collection string) Namespace {
	return Namespace{DB: db, Collection: collection}
}

// String returns the canonical "db.collection" form.
func (ns Namespace) String() string {
	return ns.DB + "." + ns.Collection
}

// BelongsTo reports whether the namespace lives in the given database.
func (ns Namespace) BelongsTo(db string) bool {
	return ns.DB == db && ns.Collection != ""
}

// IsTempAggregation reports whether the collection is a legacy aggregation
// scratch namespace.
func (ns Namespace) IsTempAggregation() bool {
	return strings.HasPrefix(ns.Collection, tempAggregationPrefix)
}
