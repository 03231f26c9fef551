package db

type migration struct {
	version int
	name    string
	up      string
}

var migrations = []migration{
	{
		version: 1,
		name:    "kv_store",
		up: `
			CREATE TABLE kv_store (
				namespace TEXT NOT NULL,
				key TEXT NOT NULL,
				value TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				PRIMARY KEY (namespace, key)
			);
		`,
	},
	{
		version: 2,
		name:    "root_properties",
		up: `
			CREATE TABLE root_properties (
				name TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				position INTEGER NOT NULL
			);
		`,
	},
	{
		version: 3,
		name:    "events",
		up: `
			CREATE TABLE events (
				id TEXT PRIMARY KEY,
				timestamp TEXT NOT NULL,
				type TEXT NOT NULL,
				entity_type TEXT NOT NULL,
				entity_id TEXT NOT NULL,
				payload_json TEXT
			);
			CREATE INDEX idx_events_timestamp ON events (timestamp);
			CREATE INDEX idx_events_entity ON events (entity_type, entity_id);
		`,
	},
}
