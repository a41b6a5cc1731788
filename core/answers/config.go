package answers

// Config holds configuration for the known-answers manifest.
type Config struct {
	// Path is the location of the TOML manifest.
	Path string `mapstructure:"path" default:"answers.toml"`
}
