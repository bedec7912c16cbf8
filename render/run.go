// Package render implements the render subcommand: it reads selector
// documents and outputs rendered CSS selector strings.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/common"
	"cssb/config"
	"cssb/css"
	"cssb/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no selector document has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	requested := cmd.String("to")
	if len(requested) == 0 {
		requested = env.Cfg.Render.Format
	}
	env.Format, err = common.ParseOutputFmt(requested)
	if err != nil {
		log.Warn("Unknown output format requested, switching to text", zap.Error(err))
		env.Format = common.OutputFmtText
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Info("Rendering starting", zap.String("source", src), zap.Stringer("format", env.Format))
	defer func(start time.Time) {
		log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return render(ctx, env, src, dst, log)
}

// render handles the work independently of CLI framework: parse the document,
// build and stringify every selector, format and write the result.
func render(ctx context.Context, env *state.LocalEnv, src, dst string, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read selector document: %w", err)
	}
	doc, err := css.ParseDocument(data)
	if err != nil {
		return err
	}

	selectors, errs := css.RenderAll(log, doc.Selectors)
	log.Debug("Selectors rendered", zap.Int("requested", len(doc.Selectors)), zap.Int("rendered", len(selectors)))

	out, err := format(selectors, env.Format)
	if err != nil {
		return err
	}
	if err := write(env, src, dst, out); err != nil {
		return err
	}
	// partial output is still written, bad definitions are reported
	return errs
}

func format(selectors []string, f common.OutputFmt) ([]byte, error) {
	switch f {
	case common.OutputFmtJSON:
		// ">" is a CSS combinator, keep it readable
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(selectors); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case common.OutputFmtYaml:
		return yaml.Marshal(selectors)
	default:
		if len(selectors) == 0 {
			return nil, nil
		}
		return []byte(strings.Join(selectors, "\n") + "\n"), nil
	}
}

// write sends data to stdout when no destination was given. A destination
// directory gets a file named after the source document.
func write(env *state.LocalEnv, src, dst string, data []byte) error {
	if len(dst) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		dst = filepath.Join(dst, config.CleanFileName(name)+ext(env.Format))
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists, use --overwrite to replace it", dst)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write rendered selectors: %w", err)
	}
	return nil
}

func ext(f common.OutputFmt) string {
	switch f {
	case common.OutputFmtJSON:
		return ".json"
	case common.OutputFmtYaml:
		return ".yaml"
	default:
		return ".txt"
	}
}
