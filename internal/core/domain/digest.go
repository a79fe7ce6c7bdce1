package domain

import "sort"

// SentinelNoPrimaryKey is reported in place of a hash for collections that
// have no primary-key index and are neither capped nor clustered: without a
// deterministic scan order no content hash can be computed, but the run as a
// whole still succeeds.
const SentinelNoPrimaryKey = "no-primary-key-index"

// CollectionDigest pairs a collection name with its content hash (or the
// sentinel value).
type CollectionDigest struct {
	Name string
	Hash string
}

// DatabaseDigest is the final report of one digest invocation. Two replicas
// holding identical collection contents produce byte-identical reports apart
// from Host and ElapsedMillis.
type DatabaseDigest struct {
	Host          string            `json:"host"`
	Collections   map[string]string `json:"collections"`
	Capped        []string          `json:"capped"`
	UUIDs         map[string]string `json:"uuids"`
	AggregateHash string            `json:"aggregateHash"`
	ElapsedMillis int64             `json:"elapsedMillis"`
}

// CollectionNames returns the hashed collection names in lexicographic order.
func (d *DatabaseDigest) CollectionNames() []string {
	names := make([]string, 0, len(d.Collections))
	for name := range d.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
