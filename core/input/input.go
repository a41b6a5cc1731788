package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"aoc-solver/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrUnknownSource is returned for an unsupported input.source value.
var ErrUnknownSource = errors.New("unknown input source")

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// noSuchKey is the S3 error code for a missing object.
const noSuchKey = "NoSuchKey"

// Source provides the input lines for a puzzle day.
type Source interface {
	Lines(ctx context.Context, day int) ([]string, error)
}

// New builds the Source selected by cfg. The storage client is only created
// for the s3 source.
func New(cfg Config, storageCfg storage.Config) (Source, error) {
	switch cfg.Source {
	case SourceFile, "":
		return NewFileSource(cfg), nil
	case SourceS3:
		client, err := storage.NewClient(storageCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return NewObjectSource(client, storageCfg.Bucket, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// FileSource reads inputs from a local directory.
type FileSource struct {
	cfg Config
}

// NewFileSource creates a FileSource for the configured directory.
func NewFileSource(cfg Config) *FileSource {
	return &FileSource{cfg: cfg}
}

// Lines reads the input file for day.
func (s *FileSource) Lines(_ context.Context, day int) ([]string, error) {
	return ReadFile(filepath.Join(s.cfg.Dir, s.cfg.Name(day)))
}

// PathSource always reads the same file regardless of the day.
type PathSource string

// Lines reads the file at the path.
func (p PathSource) Lines(_ context.Context, _ int) ([]string, error) {
	return ReadFile(string(p))
}

// ObjectSource reads inputs from an object storage bucket.
type ObjectSource struct {
	client storage.Client
	bucket string
	cfg    Config
}

// NewObjectSource creates a source backed by the given bucket.
func NewObjectSource(client storage.Client, bucket string, cfg Config) *ObjectSource {
	return &ObjectSource{client: client, bucket: bucket, cfg: cfg}
}

// Lines downloads the input object for day.
func (s *ObjectSource) Lines(ctx context.Context, day int) ([]string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", s.bucket)
	}

	name := s.cfg.Name(day)
	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, objectError("failed to get object", name, err)
	}
	defer obj.Close()

	// Minio only reports a missing key once the object is read.
	lines, err := SplitLines(obj)
	if err != nil {
		return nil, objectError("failed to read object", name, err)
	}
	return lines, nil
}

// objectError wraps a storage error. A missing key is reported as
// os.ErrNotExist so callers treat it like a missing input file.
func objectError(msg, name string, err error) error {
	if minio.ToErrorResponse(err).Code == noSuchKey {
		return fmt.Errorf("object %q: %w", name, os.ErrNotExist)
	}
	return fmt.Errorf("%s %q: %w", msg, name, err)
}

// ReadFile reads and splits a local input file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	lines, err := SplitLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %q: %w", path, err)
	}
	return lines, nil
}

// SplitLines reads r line by line, trimming surrounding whitespace from each
// line and dropping trailing blank lines.
func SplitLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// MustSplit splits an in-memory block of text, e.g. a bundled sample.
// It panics when s holds a line longer than the scanner limit.
func MustSplit(s string) []string {
	lines, err := SplitLines(strings.NewReader(s))
	if err != nil {
		panic(fmt.Sprintf("input: split: %v", err))
	}
	return lines
}
