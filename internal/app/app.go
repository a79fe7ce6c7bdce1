// Package app implements the application layer for dbdigest.
package app

import (
	"context"
	"sort"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/quilldb/dbdigest/internal/adapters/auth"
	"github.com/quilldb/dbdigest/internal/adapters/memstore"
	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports"
	"github.com/quilldb/dbdigest/internal/engine/digest"
)

// App represents the main application logic.
type App struct {
	loader  ports.FixtureLoader
	factory *digest.Factory
	log     ports.Logger

	fixturePath string
}

// New creates a new App instance.
func New(loader ports.FixtureLoader, factory *digest.Factory, log ports.Logger) *App {
	return &App{
		loader:  loader,
		factory: factory,
		log:     log,
	}
}

// SetFixturePath sets the fixture file the next invocation will load.
func (a *App) SetFixturePath(path string) {
	a.fixturePath = path
}

// open loads the fixture and wires a runner against a fresh storage engine.
func (a *App) open() (*digest.Runner, error) {
	fixture, err := a.loader.Load(a.fixturePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load fixture")
	}

	eng, err := memstore.NewFromFixture(fixture)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build storage engine")
	}

	return a.factory.Runner(digest.Backend{
		Catalog:          eng,
		Snapshots:        eng,
		Repl:             eng,
		Durability:       eng,
		Auth:             auth.NewStatic(fixture.DeniedDatabases),
		Host:             fixture.Host,
		AllowPointInTime: fixture.AllowPointInTime,
	}), nil
}

// Digest computes the content digest of one database.
func (a *App) Digest(ctx context.Context, req domain.DigestRequest) (*domain.DatabaseDigest, error) {
	runner, err := a.open()
	if err != nil {
		return nil, err
	}
	return runner.Run(ctx, req)
}

// CompareOptions carries the request options shared by all databases of a
// compare invocation.
type CompareOptions struct {
	SkipTempCollections bool
	ReadTimestamp       *domain.Timestamp
}

// CompareReport is the outcome of digesting several databases side by side.
type CompareReport struct {
	Databases []string
	Digests   map[string]*domain.DatabaseDigest
	Divergent []string
}

// Matched reports whether all databases produced identical collection hashes.
func (r *CompareReport) Matched() bool {
	return len(r.Divergent) == 0
}

// Compare digests the given databases concurrently and reports collections
// whose hashes differ between any two of them. All databases are read from
// the same fixture, so a matched report means their contents are identical.
func (a *App) Compare(ctx context.Context, databases []string, opts CompareOptions) (*CompareReport, error) {
	if len(databases) < 2 {
		return nil, zerr.Wrap(domain.ErrInvalidOptions, "compare requires at least two databases")
	}

	runner, err := a.open()
	if err != nil {
		return nil, err
	}

	digests := make([]*domain.DatabaseDigest, len(databases))
	g, gctx := errgroup.WithContext(ctx)
	for i, db := range databases {
		g.Go(func() error {
			result, err := runner.Run(gctx, domain.DigestRequest{
				Database:            db,
				SkipTempCollections: opts.SkipTempCollections,
				ReadTimestamp:       opts.ReadTimestamp,
			})
			if err != nil {
				return zerr.With(err, "database", db)
			}
			digests[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &CompareReport{
		Databases: databases,
		Digests:   make(map[string]*domain.DatabaseDigest, len(databases)),
	}
	for i, db := range databases {
		report.Digests[db] = digests[i]
	}

	report.Divergent = divergentCollections(digests)
	if !report.Matched() {
		return report, zerr.With(
			zerr.Wrap(domain.ErrDivergence, "database contents differ"),
			"collections", report.Divergent)
	}
	return report, nil
}

// divergentCollections returns the sorted names of collections whose hash is
// missing from, or differs between, any pair of digests.
func divergentCollections(digests []*domain.DatabaseDigest) []string {
	names := make(map[string]struct{})
	for _, d := range digests {
		for name := range d.Collections {
			names[name] = struct{}{}
		}
	}

	var divergent []string
	for name := range names {
		first, seen := "", false
		for _, d := range digests {
			hash, ok := d.Collections[name]
			if !ok {
				divergent = append(divergent, name)
				break
			}
			if !seen {
				first, seen = hash, true
				continue
			}
			if hash != first {
				divergent = append(divergent, name)
				break
			}
		}
	}
	sort.Strings(divergent)
	return divergent
}
