package inspect

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cascade/dom"
	"cascade/state"
)

// Resolve loads (X)HTML or XML document, computes styles of all its elements
// from style attributes and writes resulting tree.
func Resolve(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("inspect")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	if err := env.SetCodePage(cmd.String("encoding")); err != nil {
		return err
	}
	data, err := readInput(env, src)
	if err != nil {
		return err
	}
	env.Rpt.StoreData(sourceName(src), data)

	loader := dom.NewLoader(env.Log)
	var doc *dom.Document
	if cmd.Bool("xml") || isXML(src) {
		doc, err = loader.LoadXML(bytes.NewReader(data))
	} else {
		doc, err = loader.LoadHTML(bytes.NewReader(data))
	}
	if err != nil {
		return fmt.Errorf("unable to load document '%s': %w", src, err)
	}

	opts := dom.Options{
		RootFontSize:   env.Cfg.Resolve.RootFontSize,
		ViewportWidth:  env.Cfg.Resolve.ViewportWidth,
		ViewportHeight: env.Cfg.Resolve.ViewportHeight,
	}
	dom.NewResolver(nil, env.Diagnostics(), opts, env.Log).Resolve(doc)

	labeler, err := dom.NewLabeler(env.Cfg.Resolve.LabelTemplate)
	if err != nil {
		return err
	}
	result, err := dom.Dump(doc, labeler)
	if err != nil {
		return fmt.Errorf("unable to output resolved document: %w", err)
	}
	env.Rpt.StoreData("result.txt", []byte(result))
	if err := writeOutput(cmd, dst, result); err != nil {
		return err
	}

	log.Info("Document resolved",
		zap.String("source", src),
		zap.Int("elements", doc.Len()),
		zap.Int("problems", env.Collected.Len()),
		zap.Duration("elapsed", env.Uptime()))
	return env.Failed()
}

func isXML(fname string) bool {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".xml", ".fb2":
		return true
	}
	return false
}
