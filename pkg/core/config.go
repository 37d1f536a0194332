package core

type Config struct {
	Output OutputConfig
	Digest DigestConfig
	Log    LogConfig
}

type OutputConfig struct {
	Format       string // text, json or cbor
	Short        bool
	Digest       bool
	LegacyDigest bool
	CID          bool
}

type DigestConfig struct {
	CIDVersion int // 0 or 1
}

type LogConfig struct {
	Level string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{Format: "text"},
		Digest: DigestConfig{CIDVersion: 1},
		Log:    LogConfig{Level: "info"},
	}
}
