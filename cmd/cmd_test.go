package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aoc-solver/core/loader"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gearsSample = strings.Join([]string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}, "\n") + "\n"

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	resetFlags(RootCmd)

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := RootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSolve_Sample(t *testing.T) {
	out, err := run(t, "solve", "3", "--sample")
	require.NoError(t, err)
	assert.Equal(t, "Part One: 4361\nPart Two: 467835\n", out)
}

func TestSolve_InputFlag(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.txt", gearsSample)

	out, err := run(t, "solve", "3", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "Part One: 4361\nPart Two: 467835\n", out)
}

func TestSolve_ConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day04.txt", "Card 1: 1 2 | 1 2\nCard 2: 5 | 6\n")
	t.Setenv("INPUT_DIR", dir)

	out, err := run(t, "solve", "4")
	require.NoError(t, err)
	assert.Equal(t, "Part One: 2\nPart Two: 3\n", out)
}

func TestSolve_Errors(t *testing.T) {
	t.Run("UnknownDay", func(t *testing.T) {
		_, err := run(t, "solve", "25", "--sample")
		assert.ErrorIs(t, err, loader.ErrPuzzleNotFound)
	})

	t.Run("InvalidDay", func(t *testing.T) {
		_, err := run(t, "solve", "three")
		assert.ErrorContains(t, err, `invalid day "three"`)
	})

	t.Run("MissingInput", func(t *testing.T) {
		t.Setenv("INPUT_DIR", t.TempDir())
		_, err := run(t, "solve", "3")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("MalformedInput", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "bad.txt", "not a game\n")
		_, err := run(t, "solve", "2", "--input", path)
		assert.ErrorContains(t, err, "day 2 (cube-conundrum)")
	})
}

func TestList(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "day  1 trebuchet\nday  2 cube-conundrum\nday  3 gear-ratios\nday  4 scratchcards\n", out)
}

const sampleManifest = `
[[answer]]
day = 1
kind = "sample"
part_two = 281

[[answer]]
day = 2
kind = "sample"
part_one = 8
part_two = 2286

[[answer]]
day = 3
kind = "sample"
part_one = 4361
part_two = 467835

[[answer]]
day = 4
kind = "sample"
part_one = 13
part_two = 30
`

func TestVerify_Sample(t *testing.T) {
	t.Setenv("ANSWERS_PATH", writeFile(t, t.TempDir(), "answers.toml", sampleManifest))

	out, err := run(t, "verify", "--sample")
	require.NoError(t, err)
	assert.Equal(t, "Verified: 4/4\n", out)
}

func TestVerify_Mismatch(t *testing.T) {
	manifest := "[[answer]]\nday = 3\nkind = \"sample\"\npart_one = 1\n"
	t.Setenv("ANSWERS_PATH", writeFile(t, t.TempDir(), "answers.toml", manifest))

	out, err := run(t, "verify", "3", "--sample")
	assert.ErrorContains(t, err, "1 of 1 puzzles gave unexpected answers")
	assert.Equal(t, "Verified: 0/1\n", out)
}

func TestVerify_SkipsMissingInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "day03.txt", gearsSample)
	manifest := "[[answer]]\nday = 3\nkind = \"input\"\npart_one = 4361\n\n[[answer]]\nday = 4\nkind = \"input\"\npart_one = 1\n"
	t.Setenv("ANSWERS_PATH", writeFile(t, dir, "answers.toml", manifest))
	t.Setenv("INPUT_DIR", dir)

	out, err := run(t, "verify")
	require.NoError(t, err)
	assert.Equal(t, "Verified: 1/1\n", out)
}
