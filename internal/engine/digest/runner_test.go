package digest_test

import (
	"context"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quilldb/dbdigest/internal/adapters/auth"
	"github.com/quilldb/dbdigest/internal/adapters/lockman"
	"github.com/quilldb/dbdigest/internal/adapters/memstore"
	"github.com/quilldb/dbdigest/internal/adapters/telemetry"
	"github.com/quilldb/dbdigest/internal/core/domain"
	"github.com/quilldb/dbdigest/internal/core/ports/mocks"
	"github.com/quilldb/dbdigest/internal/engine/digest"
)

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func newRunner(t *testing.T, eng *memstore.Engine, allowPointInTime bool, denied []string) *digest.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	factory := digest.NewFactory(lockman.New(), quietLogger(ctrl), telemetry.NewNoOp())
	return factory.Runner(digest.Backend{
		Catalog:          eng,
		Snapshots:        eng,
		Repl:             eng,
		Durability:       eng,
		Auth:             auth.NewStatic(denied),
		Host:             "node-a",
		AllowPointInTime: allowPointInTime,
	})
}

func mustCreate(t *testing.T, eng *memstore.Engine, db, coll string, opts memstore.CollectionOptions) {
	t.Helper()
	_, err := eng.CreateCollection(db, coll, opts)
	require.NoError(t, err)
}

func mustInsert(t *testing.T, eng *memstore.Engine, db, coll, key string, fields map[string]any) {
	t.Helper()
	require.NoError(t, eng.Insert(db, coll, key, fields))
}

func seedEngine(t *testing.T) *memstore.Engine {
	t.Helper()
	eng := memstore.New(true)
	mustCreate(t, eng, "inventory", "orders", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustCreate(t, eng, "inventory", "users", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustInsert(t, eng, "inventory", "orders", "o1", map[string]any{"total": int64(100)})
	mustInsert(t, eng, "inventory", "orders", "o2", map[string]any{"total": int64(250)})
	mustInsert(t, eng, "inventory", "users", "u1", map[string]any{"name": "alice"})
	return eng
}

func TestRunner_Run_Deterministic(t *testing.T) {
	eng := seedEngine(t)
	runner := newRunner(t, eng, false, nil)

	first, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)
	second, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)

	assert.Equal(t, first.AggregateHash, second.AggregateHash)
	assert.Equal(t, first.Collections, second.Collections)
	assert.Equal(t, "node-a", first.Host)
	assert.Equal(t, []string{"orders", "users"}, first.CollectionNames())
}

func TestRunner_Run_InsertionOrderIrrelevantWithPrimaryKeyIndex(t *testing.T) {
	forward := memstore.New(true)
	mustCreate(t, forward, "db", "c", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustInsert(t, forward, "db", "c", "a", map[string]any{"v": int64(1)})
	mustInsert(t, forward, "db", "c", "b", map[string]any{"v": int64(2)})

	reverse := memstore.New(true)
	mustCreate(t, reverse, "db", "c", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustInsert(t, reverse, "db", "c", "b", map[string]any{"v": int64(2)})
	mustInsert(t, reverse, "db", "c", "a", map[string]any{"v": int64(1)})

	left, err := newRunner(t, forward, false, nil).Run(context.Background(), domain.DigestRequest{Database: "db"})
	require.NoError(t, err)
	right, err := newRunner(t, reverse, false, nil).Run(context.Background(), domain.DigestRequest{Database: "db"})
	require.NoError(t, err)

	assert.Equal(t, left.Collections["c"], right.Collections["c"])
	assert.Equal(t, left.AggregateHash, right.AggregateHash)
}

func TestRunner_Run_SensitiveToWrites(t *testing.T) {
	eng := seedEngine(t)
	runner := newRunner(t, eng, false, nil)

	before, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)

	require.NoError(t, eng.Update("inventory", "orders", "o1", map[string]any{"total": int64(101)}))
	afterUpdate, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)
	assert.NotEqual(t, before.Collections["orders"], afterUpdate.Collections["orders"])
	assert.NotEqual(t, before.AggregateHash, afterUpdate.AggregateHash)
	assert.Equal(t, before.Collections["users"], afterUpdate.Collections["users"])

	require.NoError(t, eng.Delete("inventory", "orders", "o2"))
	afterDelete, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)
	assert.NotEqual(t, afterUpdate.Collections["orders"], afterDelete.Collections["orders"])
}

func TestRunner_Run_Exclusions(t *testing.T) {
	eng := seedEngine(t)
	mustCreate(t, eng, "inventory", "oplog", memstore.CollectionOptions{NotReplicated: true, PrimaryKeyIndex: true})
	mustCreate(t, eng, "inventory", "tmp.agg.7", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustCreate(t, eng, "inventory", "doomed", memstore.CollectionOptions{DropPending: true, PrimaryKeyIndex: true})
	mustCreate(t, eng, "inventory", "scratch", memstore.CollectionOptions{Temporary: true, PrimaryKeyIndex: true})

	runner := newRunner(t, eng, false, nil)

	report, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "scratch", "users"}, report.CollectionNames())

	skipped, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:            "inventory",
		SkipTempCollections: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "users"}, skipped.CollectionNames())
}

func TestRunner_Run_InclusionList(t *testing.T) {
	eng := seedEngine(t)
	runner := newRunner(t, eng, false, nil)

	report, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:    "inventory",
		Collections: []string{"users"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, report.CollectionNames())
}

func TestRunner_Run_SentinelAndCapped(t *testing.T) {
	eng := memstore.New(true)
	mustCreate(t, eng, "db", "loose", memstore.CollectionOptions{})
	mustCreate(t, eng, "db", "logs", memstore.CollectionOptions{Capped: true})
	mustInsert(t, eng, "db", "loose", "k", map[string]any{"v": int64(1)})
	mustInsert(t, eng, "db", "logs", "l1", map[string]any{"m": "boot"})

	runner := newRunner(t, eng, false, nil)

	report, err := runner.Run(context.Background(), domain.DigestRequest{Database: "db"})
	require.NoError(t, err)

	assert.Equal(t, domain.SentinelNoPrimaryKey, report.Collections["loose"])
	assert.NotEqual(t, domain.SentinelNoPrimaryKey, report.Collections["logs"])
	assert.Equal(t, []string{"logs"}, report.Capped)
}

func TestRunner_Run_Unauthorized(t *testing.T) {
	eng := seedEngine(t)
	runner := newRunner(t, eng, false, []string{"inventory"})

	_, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRunner_Run_RejectsEmptyDatabase(t *testing.T) {
	eng := seedEngine(t)
	runner := newRunner(t, eng, false, nil)

	_, err := runner.Run(context.Background(), domain.DigestRequest{Database: ""})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidNamespace)
}

func TestRunner_Run_PointInTimeReadsFrozenState(t *testing.T) {
	eng := memstore.New(true)
	mustCreate(t, eng, "db", "c", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustInsert(t, eng, "db", "c", "a", map[string]any{"v": int64(1)})
	frozen := eng.LastApplied()

	mustInsert(t, eng, "db", "c", "b", map[string]any{"v": int64(2)})

	runner := newRunner(t, eng, true, nil)

	latest, err := runner.Run(context.Background(), domain.DigestRequest{Database: "db"})
	require.NoError(t, err)

	atFrozen, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:      "db",
		ReadTimestamp: &frozen,
	})
	require.NoError(t, err)
	assert.NotEqual(t, latest.Collections["c"], atFrozen.Collections["c"])

	again, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:      "db",
		ReadTimestamp: &frozen,
	})
	require.NoError(t, err)
	assert.Equal(t, atFrozen.AggregateHash, again.AggregateHash)
}

func TestRunner_Run_PointInTimeSkipsCollectionsCreatedLater(t *testing.T) {
	eng := memstore.New(true)
	mustCreate(t, eng, "db", "old", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustInsert(t, eng, "db", "old", "a", map[string]any{"v": int64(1)})
	frozen := eng.LastApplied()

	mustCreate(t, eng, "db", "young", memstore.CollectionOptions{PrimaryKeyIndex: true})
	mustInsert(t, eng, "db", "young", "b", map[string]any{"v": int64(2)})

	runner := newRunner(t, eng, true, nil)

	report, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:      "db",
		ReadTimestamp: &frozen,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, report.CollectionNames())
}

func TestRunner_Run_PointInTimeRejections(t *testing.T) {
	eng := seedEngine(t)
	ahead := eng.LastApplied() + 100

	t.Run("feature disabled", func(t *testing.T) {
		runner := newRunner(t, eng, false, nil)
		ts := eng.LastApplied()
		_, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory", ReadTimestamp: &ts})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})

	t.Run("ahead of last applied", func(t *testing.T) {
		runner := newRunner(t, eng, true, nil)
		_, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory", ReadTimestamp: &ahead})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})

	t.Run("ahead of all durable", func(t *testing.T) {
		eng := seedEngine(t)
		eng.PinAllDurable()
		mustInsert(t, eng, "inventory", "orders", "o3", map[string]any{"total": int64(9)})
		ts := eng.LastApplied()
		require.Greater(t, ts, eng.AllDurable())

		runner := newRunner(t, eng, true, nil)
		_, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory", ReadTimestamp: &ts})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidOptions)
	})
}

func TestRunner_Run_TimestampValidationPrecedesLocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := seedEngine(t)
	ahead := eng.LastApplied() + 100

	// No lock expectations: any lock call fails the test.
	locks := mocks.NewMockLockManager(ctrl)

	factory := digest.NewFactory(locks, quietLogger(ctrl), telemetry.NewNoOp())
	runner := factory.Runner(digest.Backend{
		Catalog:          eng,
		Snapshots:        eng,
		Repl:             eng,
		Durability:       eng,
		Auth:             auth.AllowAll(),
		Host:             "node-a",
		AllowPointInTime: true,
	})

	_, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:      "inventory",
		ReadTimestamp: &ahead,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidOptions)
}

func TestRunner_Run_PointInTimeMatchesLaterReadWithoutWrites(t *testing.T) {
	eng := seedEngine(t)
	runner := newRunner(t, eng, true, nil)
	ts := eng.LastApplied()

	atTS, err := runner.Run(context.Background(), domain.DigestRequest{
		Database:      "inventory",
		ReadTimestamp: &ts,
	})
	require.NoError(t, err)

	latest, err := runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)

	assert.Equal(t, latest.Collections, atTS.Collections)
	assert.Equal(t, latest.AggregateHash, atTS.AggregateHash)
}

func TestRunner_Run_PrepareConflictOnlyEnforcedPointInTime(t *testing.T) {
	eng := seedEngine(t)
	_, err := eng.Prepare("inventory", "orders")
	require.NoError(t, err)

	runner := newRunner(t, eng, true, nil)

	// Latest reads ignore prepared transactions.
	_, err = runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
	require.NoError(t, err)

	// A point-in-time read overlapping the prepare conflicts.
	ts := eng.LastApplied()
	_, err = runner.Run(context.Background(), domain.DigestRequest{Database: "inventory", ReadTimestamp: &ts})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPrepareConflict)
}

func TestRunner_Run_PrepareResolutionUnblocksPointInTime(t *testing.T) {
	eng := seedEngine(t)
	prepTS, err := eng.Prepare("inventory", "orders")
	require.NoError(t, err)

	runner := newRunner(t, eng, true, nil)
	ts := eng.LastApplied()

	_, err = runner.Run(context.Background(), domain.DigestRequest{Database: "inventory", ReadTimestamp: &ts})
	require.Error(t, err)

	eng.ResolvePrepared("inventory", "orders", prepTS)
	_, err = runner.Run(context.Background(), domain.DigestRequest{Database: "inventory", ReadTimestamp: &ts})
	require.NoError(t, err)
}

func TestRunner_Run_LockModesFollowReadMode(t *testing.T) {
	tests := []struct {
		name         string
		pointInTime  bool
		databaseMode domain.LockMode
	}{
		{name: "latest takes shared database lock", databaseMode: domain.LockShared},
		{name: "point in time takes intent shared database lock", pointInTime: true, databaseMode: domain.LockIntentShared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			eng := memstore.New(true)
			mustCreate(t, eng, "db", "c", memstore.CollectionOptions{PrimaryKeyIndex: true})
			mustInsert(t, eng, "db", "c", "a", map[string]any{"v": int64(1)})

			guard := mocks.NewMockGuard(ctrl)
			guard.EXPECT().Release().AnyTimes()

			locks := mocks.NewMockLockManager(ctrl)
			locks.EXPECT().LockGlobal(gomock.Any(), domain.LockIntentShared).Return(guard, nil)
			locks.EXPECT().LockDatabase(gomock.Any(), "db", tt.databaseMode).Return(guard, nil)
			locks.EXPECT().LockCollection(gomock.Any(), gomock.Any(), domain.LockIntentShared).
				Return(guard, nil).AnyTimes()

			factory := digest.NewFactory(locks, quietLogger(ctrl), telemetry.NewNoOp())
			runner := factory.Runner(digest.Backend{
				Catalog:          eng,
				Snapshots:        eng,
				Repl:             eng,
				Durability:       eng,
				Auth:             auth.AllowAll(),
				Host:             "node-a",
				AllowPointInTime: true,
			})

			req := domain.DigestRequest{Database: "db"}
			if tt.pointInTime {
				ts := eng.LastApplied()
				req.ReadTimestamp = &ts
			}

			_, err := runner.Run(context.Background(), req)
			require.NoError(t, err)
		})
	}
}

func TestRunner_Run_RejectsForeignNamespaceInCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	view := mocks.NewMockCatalogView(ctrl)
	view.EXPECT().Generation().Return(uint64(1)).AnyTimes()
	view.EXPECT().Collections("db").Return([]domain.CollectionDescriptor{
		{Namespace: domain.NewNamespace("other", "x")},
	})

	catalog := mocks.NewMockCatalog(ctrl)
	catalog.EXPECT().Current().Return(view).AnyTimes()

	snap := mocks.NewMockSnapshot(ctrl)
	snap.EXPECT().ReadTimestamp().Return(domain.Timestamp(0), false).AnyTimes()
	snap.EXPECT().Close()

	manager := mocks.NewMockSnapshotManager(ctrl)
	manager.EXPECT().Open().Return(snap, nil)

	factory := digest.NewFactory(lockman.New(), quietLogger(ctrl), telemetry.NewNoOp())
	runner := factory.Runner(digest.Backend{
		Catalog:    catalog,
		Snapshots:  manager,
		Repl:       mocks.NewMockReplicationState(ctrl),
		Durability: mocks.NewMockDurabilityWatermark(ctrl),
		Auth:       auth.AllowAll(),
		Host:       "node-a",
	})

	_, err := runner.Run(context.Background(), domain.DigestRequest{Database: "db"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidNamespace)
}

func TestRunner_Run_ConcurrentInvocationsAgree(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		eng := seedEngine(t)
		runner := newRunner(t, eng, false, nil)

		const workers = 4
		results := make([]*domain.DatabaseDigest, workers)
		errs := make([]error, workers)

		var wg sync.WaitGroup
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i], errs[i] = runner.Run(context.Background(), domain.DigestRequest{Database: "inventory"})
			}()
		}
		wg.Wait()

		for i := range workers {
			require.NoError(t, errs[i])
			assert.Equal(t, results[0].AggregateHash, results[i].AggregateHash)
		}
	})
}
