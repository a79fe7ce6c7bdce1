// Package digest implements the consistency-verification core: it produces a
// deterministic content fingerprint of a database's collections so replica
// nodes can compare fingerprints and detect silent divergence.
package digest

import (
	"context"

	"go.trai.ch/zerr"

	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
)

// Runner sequences one digest invocation: authorization, validation,
// consistent view acquisition, locking, the per-collection scan loop and
// report assembly. Invocations are independent; several may run concurrently
// against the same database, isolated by snapshots and the locking regime
// rather than mutual exclusion.
type Runner struct {
	coordinator *SnapshotCoordinator
	locking     *LockingPolicy
	hasher      *CollectionHasher
	auth        ports.Authorizer
	log         ports.Logger
	telemetry   ports.Telemetry
	host        string
}

// NewRunner creates a Runner.
func NewRunner(
	coordinator *SnapshotCoordinator,
	locking *LockingPolicy,
	hasher *CollectionHasher,
	auth ports.Authorizer,
	log ports.Logger,
	telemetry ports.Telemetry,
	host string,
) *Runner {
	return &Runner{
		coordinator: coordinator,
		locking:     locking,
		hasher:      hasher,
		auth:        auth,
		log:         log,
		telemetry:   telemetry,
		host:        host,
	}
}

// Run executes one digest invocation.
func (r *Runner) Run(ctx context.Context, req domain.DigestRequest) (*domain.DatabaseDigest, error) {
	// Authorization first, then validation; both fail before any lock.
	if err := r.auth.AllowDigest(ctx, req.Database); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := r.coordinator.ValidateReadTimestamp(req.ReadTimestamp); err != nil {
		return nil, err
	}

	if req.SkipTempCollections {
		r.log.Info("skipping hash computation for temporary collections")
	}

	builder := NewAggregateDigestBuilder(r.host)

	session, err := r.locking.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer session.Release()

	snap, err := r.coordinator.Acquire(ctx, req.ReadTimestamp)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	_, pointInTime := snap.ReadTimestamp()
	if err := session.LockDatabase(ctx, req.Database, pointInTime); err != nil {
		return nil, err
	}

	filter := NewCollectionFilter(req)

	for _, desc := range snap.View.Collections(req.Database) {
		if !desc.Namespace.BelongsTo(req.Database) {
			return nil, zerr.With(
				zerr.With(
					zerr.Wrap(domain.ErrInvalidNamespace, "namespace outside the target database"),
					"namespace", desc.Namespace.String(),
				),
				"database", req.Database,
			)
		}

		if err := r.hashOne(ctx, session, snap, filter, builder, req.Database, desc); err != nil {
			return nil, err
		}
	}

	return builder.Build(), nil
}

// hashOne resolves, filters and hashes a single collection under its own
// collection guard. The guard spans exactly the resolve-and-hash window.
func (r *Runner) hashOne(
	ctx context.Context,
	session *LockSession,
	snap *DatabaseSnapshot,
	filter *CollectionFilter,
	builder *AggregateDigestBuilder,
	db string,
	desc domain.CollectionDescriptor,
) error {
	guard, err := session.LockCollection(ctx, desc.Namespace)
	if err != nil {
		return err
	}
	defer guard.Release()

	resolved, skip, err := r.hasher.Resolve(snap, db, desc)
	if err != nil {
		return err
	}
	if skip || !filter.ShouldInclude(resolved) {
		return nil
	}

	name := resolved.Namespace.Collection
	if resolved.Capped {
		builder.MarkCapped(name)
	}

	vctx, vertex := r.telemetry.Record(ctx, "hash "+resolved.Namespace.String())
	hash, err := r.hasher.Hash(vctx, snap, resolved)
	vertex.Complete(err)
	if err != nil {
		return err
	}

	builder.Add(name, resolved.UUID, hash)
	return nil
}
