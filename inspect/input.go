// Package inspect implements program commands: exploding declarations into
// longhand property records and resolving styles of a whole document.
package inspect

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"

	"cascade/state"
)

const stdinName = "-"

// readInput reads source file (or STDIN) decoding it to utf-8.
func readInput(env *state.LocalEnv, fname string) ([]byte, error) {
	var in io.Reader = os.Stdin
	if fname != stdinName {
		f, err := os.Open(fname)
		if err != nil {
			return nil, fmt.Errorf("unable to open source: %w", err)
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(env.Input(in))
	if err != nil {
		return nil, fmt.Errorf("unable to read source '%s': %w", fname, err)
	}
	return data, nil
}

func sourceName(fname string) string {
	if fname == stdinName {
		return "source/stdin"
	}
	return "source/" + filepath.Base(fname)
}

// writeOutput writes result to the file or, when name is empty, to command
// output.
func writeOutput(cmd *cli.Command, fname, result string) error {
	var out io.Writer = os.Stdout
	if w := cmd.Root().Writer; w != nil {
		out = w
	}
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}
	if _, err := io.WriteString(out, result); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}
