package digest

import (
	"fmt"
	"sort"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/quilldb/dbdigest/internal/core/domain"
)

// AggregateDigestBuilder collects per-collection digests and folds them into
// the final report. Collection hashes are folded in lexicographic name order
// under an explicit sort, which is what makes the aggregate hash independent
// of catalog enumeration order.
type AggregateDigestBuilder struct {
	host   string
	start  time.Time
	hashes map[string]string
	uuids  map[string]uuid.UUID
	capped map[string]struct{}
}

// NewAggregateDigestBuilder starts a builder; elapsed time is measured from
// this call.
func NewAggregateDigestBuilder(host string) *AggregateDigestBuilder {
	return &AggregateDigestBuilder{
		host:   host,
		start:  time.Now(),
		hashes: make(map[string]string),
		uuids:  make(map[string]uuid.UUID),
		capped: make(map[string]struct{}),
	}
}

// Add records one collection's digest and stable identifier.
func (b *AggregateDigestBuilder) Add(name string, id uuid.UUID, hash string) {
	b.hashes[name] = hash
	b.uuids[name] = id
}

// MarkCapped records that an included collection is capped. Capped-ness
// reports, it never excludes: every marked name must also be Added.
func (b *AggregateDigestBuilder) MarkCapped(name string) {
	b.capped[name] = struct{}{}
}

// Build assembles the report and computes the aggregate hash.
func (b *AggregateDigestBuilder) Build() *domain.DatabaseDigest {
	names := make([]string, 0, len(b.hashes))
	for name := range b.hashes {
		names = append(names, name)
	}
	sort.Strings(names)

	aggregate := xxhash.New()
	collections := make(map[string]string, len(b.hashes))
	uuids := make(map[string]string, len(b.uuids))
	for _, name := range names {
		hash := b.hashes[name]
		collections[name] = hash
		uuids[name] = b.uuids[name].String()
		_, _ = aggregate.WriteString(hash)
	}

	capped := make([]string, 0, len(b.capped))
	for name := range b.capped {
		capped = append(capped, name)
	}
	sort.Strings(capped)

	return &domain.DatabaseDigest{
		Host:          b.host,
		Collections:   collections,
		Capped:        capped,
		UUIDs:         uuids,
		AggregateHash: fmt.Sprintf("%016x", aggregate.Sum64()),
		ElapsedMillis: time.Since(b.start).Milliseconds(),
	}
}
