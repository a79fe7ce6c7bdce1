package config

// fixtureDTO mirrors the YAML fixture file.
type fixtureDTO struct {
	Host                  string                    `yaml:"host"`
	Replication           bool                      `yaml:"replication"`
	AllowPointInTimeReads bool                      `yaml:"allowPointInTimeReads"`
	DeniedDatabases       []string                  `yaml:"deniedDatabases"`
	Databases             map[string]databaseDTO    `yaml:"databases"`
}

type databaseDTO struct {
	Collections map[string]collectionDTO `yaml:"collections"`
}

type collectionDTO struct {
	Capped          bool          `yaml:"capped"`
	Clustered       bool          `yaml:"clustered"`
	Temporary       bool          `yaml:"temporary"`
	DropPending     bool          `yaml:"dropPending"`
	GlobalIndex     bool          `yaml:"globalIndex"`
	NotReplicated   bool          `yaml:"notReplicated"`
	PrimaryKeyIndex bool          `yaml:"primaryKeyIndex"`
	Documents       []documentDTO `yaml:"documents"`
}

type documentDTO struct {
	Key    string         `yaml:"key"`
	Fields map[string]any `yaml:"fields"`
}
