package catalog

// Schema DDL for the catalog database. Unlike a rebuilt query cache, the
// catalog persists across runs, so tables are created only when missing.
const (
	createSnapshots = `CREATE TABLE IF NOT EXISTS snapshots (
    snapshot_id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL,
    class_count INTEGER NOT NULL
);`

	createSnapshotClasses = `CREATE TABLE IF NOT EXISTS snapshot_classes (
    snapshot_id TEXT NOT NULL,
    name TEXT NOT NULL,
    base TEXT NOT NULL,
    constructible INTEGER NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (snapshot_id, position),
    FOREIGN KEY (snapshot_id) REFERENCES snapshots(snapshot_id) ON DELETE CASCADE
);`

	idxSnapshotClassesSnapshot = `CREATE INDEX IF NOT EXISTS idx_snapshot_classes_snapshot
    ON snapshot_classes(snapshot_id);`
)

// schemaStatements in execution order.
var schemaStatements = []string{
	createSnapshots,
	createSnapshotClasses,
	idxSnapshotClassesSnapshot,
}
