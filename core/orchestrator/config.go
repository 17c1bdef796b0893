package orchestrator

// Config holds the sync configuration.
type Config struct {
	// Inventories lists inventory sources: local paths or s3://bucket/key.
	Inventories []string `mapstructure:"inventories"`
	// ProfilesPath is the profile document written by the file backend.
	ProfilesPath string `mapstructure:"profiles_path" default:"~/Library/Application Support/iTerm2/DynamicProfiles/profiles.json"`
	// Store selects the profile backend: file, s3 or database.
	Store string `mapstructure:"store" default:"file"`
	// ObjectKey is the object name used by the s3 backend.
	ObjectKey string `mapstructure:"object_key" default:"profiles.json"`
	// IDGenerator selects the identifier generator: uuid or uuidgen.
	IDGenerator string `mapstructure:"id_generator" default:"uuid"`
}
