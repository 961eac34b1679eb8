package inspect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cascade/archive"
	"cascade/css"
	"cascade/state"
	"cascade/style"
	"cascade/utils/debug"
)

// Explode prints property records produced from a single declaration block
// given on command line or, when argument starts with "@", from every rule of
// stylesheet file. Zip containers (EPUB books for example) are searched for
// stylesheets.
func Explode(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no declaration has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	parser := css.NewParser(env.Log)

	var all css.Stylesheet
	addSheet := func(name string, data []byte) {
		sheet := parser.Parse(data, name)
		for _, w := range sheet.Warnings {
			log.Warn("Stylesheet is not fully supported", zap.String("source", name), zap.String("problem", w))
		}
		all.Rules = append(all.Rules, sheet.Rules...)
		all.Warnings = append(all.Warnings, sheet.Warnings...)
	}

	if fname, ok := strings.CutPrefix(src, "@"); ok {
		if archive.IsArchive(fname) {
			// every stylesheet inside container in stored order
			err := archive.ReadAll(fname, archive.HasExt(".css"), func(name string, data []byte) error {
				decoded, err := io.ReadAll(env.Input(bytes.NewReader(data)))
				if err != nil {
					return fmt.Errorf("unable to decode %q: %w", name, err)
				}
				env.Rpt.StoreData("source/"+name, decoded)
				addSheet(name, decoded)
				return nil
			})
			if err != nil {
				return fmt.Errorf("unable to read stylesheets from '%s': %w", fname, err)
			}
		} else {
			data, err := readInput(env, fname)
			if err != nil {
				return err
			}
			env.Rpt.StoreData(sourceName(fname), data)
			addSheet(fname, data)
		}
	} else {
		env.Rpt.StoreData("source/declaration.css", []byte(src))
		all.Rules = []css.Rule{{Selector: "*", Declaration: parser.ParseDeclaration(src)}}
	}

	rules := all.Rules
	if sel := cmd.String("selector"); len(sel) > 0 {
		rules = all.RulesBySelector(sel)
		log.Debug("Rules selected", zap.String("selector", sel), zap.Int("total", len(all.Rules)), zap.Int("selected", len(rules)))
	}

	factory := style.NewFactory(nil, env.Diagnostics(), env.Log)

	var (
		tw      = debug.NewTreeWriter()
		seq     = int(cmd.Int("sequence"))
		records int
		props   []*style.Property
	)
	for _, r := range rules {
		tw.Line(0, "%s", r.Selector)
		props, seq = factory.ExplodeAll(r.Declaration, seq)
		for _, p := range props {
			tw.Line(1, "%d %s: %s", p.Sequence(), p.Name(), p.Specified())
		}
		records += len(props)
	}

	result := tw.String()
	env.Rpt.StoreData("result.txt", []byte(result))
	if err := writeOutput(cmd, "", result); err != nil {
		return err
	}

	log.Info("Declarations exploded",
		zap.Int("rules", len(rules)),
		zap.Int("warnings", len(all.Warnings)),
		zap.Int("records", records),
		zap.Int("problems", env.Collected.Len()))
	return env.Failed()
}
