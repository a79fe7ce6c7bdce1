package domain

// Fixture describes a full database instance to materialize in the in-memory
// storage engine: host identity, feature gates, databases, collections and
// their documents. It is the decoded form of the YAML fixture file the CLI
// operates on.
type Fixture struct {
	Host                string
	ReplicationEnabled  bool
	AllowPointInTime    bool
	DeniedDatabases     []string
	Databases           map[string]DatabaseFixture
}

// DatabaseFixture describes one database.
type DatabaseFixture struct {
	Collections map[string]CollectionFixture
}

// CollectionFixture describes one collection and its initial contents.
// Documents are inserted in slice order; that order is the collection's
// natural order.
type CollectionFixture struct {
	Capped          bool
	Clustered       bool
	Temporary       bool
	DropPending     bool
	GlobalIndex     bool
	NotReplicated   bool
	PrimaryKeyIndex bool
	Documents       []DocumentFixture
}

// DocumentFixture is one document: a primary key plus its fields.
type DocumentFixture struct {
	Key    string
	Fields map[string]any
}
