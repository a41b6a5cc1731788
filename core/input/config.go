package input

import "fmt"

const (
	SourceFile = "file"
	SourceS3   = "s3"
)

// Config holds configuration for locating puzzle inputs.
type Config struct {
	// Source selects where inputs are read from (file, s3).
	Source string `mapstructure:"source" default:"file"`
	// Dir is the local directory holding input files.
	Dir string `mapstructure:"dir" default:"inputs"`
	// Pattern formats the day number into a file or object name.
	Pattern string `mapstructure:"pattern" default:"day%02d.txt"`
}

// Name returns the file or object name for day.
func (c Config) Name(day int) string {
	pattern := c.Pattern
	if pattern == "" {
		pattern = "day%02d.txt"
	}
	return fmt.Sprintf(pattern, day)
}
