//go:build !(js && wasm)
// +build !js !wasm

// Command clickcounter-snapshot renders the click counter to static HTML,
// optionally after replaying a sequence of button presses.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/zapr"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vcrobe/clickcounter/appcomponents"
	"github.com/vcrobe/clickcounter/console"
	"github.com/vcrobe/clickcounter/testcomponents"
	"github.com/vcrobe/clickcounter/vdom"
)

// actionButtons maps the accepted action names to the control they press.
var actionButtons = map[string]string{
	"inc":       appcomponents.TestAttrIncrementButton,
	"increment": appcomponents.TestAttrIncrementButton,
	"dec":       appcomponents.TestAttrDecrementButton,
	"decrement": appcomponents.TestAttrDecrementButton,
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "clickcounter-snapshot",
		Usage:     "Render the click counter to static HTML",
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "actions",
				Aliases: []string{"a"},
				Usage:   "Comma separated presses to replay before rendering: inc, dec",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "Write HTML to this file instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
		},
		Action: func(c *cli.Context) error {
			if err := initLogger(c.Bool("debug")); err != nil {
				return cli.Exit(fmt.Errorf("error initializing logger: %w", err), 1)
			}
			defer func() { _ = zap.L().Sync() }()

			out, err := snapshot(c.StringSlice("actions"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if path := c.String("out"); path != "" {
				if err := os.WriteFile(path, []byte(out), 0644); err != nil {
					return cli.Exit(fmt.Errorf("error writing snapshot to %q: %w", path, err), 1)
				}
				zap.S().Infof("Snapshot written to %s", path)
				return nil
			}

			_, err = io.WriteString(c.App.Writer, out)
			return err
		},
	}
}

// snapshot mounts a fresh counter, replays actions and returns the resulting HTML.
func snapshot(actions []string) (string, error) {
	counter := appcomponents.NewClickCounter()
	renderer := testcomponents.NewTestRenderer(counter)
	renderer.RenderRoot()
	defer renderer.Unmount()

	for i, action := range actions {
		name := strings.ToLower(strings.TrimSpace(action))
		if name == "" {
			continue
		}
		button, ok := actionButtons[name]
		if !ok {
			return "", fmt.Errorf("unknown action %q at position %d (valid: inc, dec)", action, i+1)
		}
		if err := renderer.Click(button); err != nil {
			return "", fmt.Errorf("replay %q: %w", action, err)
		}
		state := counter.State()
		console.Log(fmt.Sprintf("%s -> count=%d errorVisible=%t", name, state.Count, state.ErrorVisible))
	}

	html, err := vdom.HTMLString(renderer.GetCurrentVDOM())
	if err != nil {
		return "", fmt.Errorf("error rendering snapshot: %w", err)
	}
	return html + "\n", nil
}

func initLogger(debug bool) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	console.SetLogger(zapr.NewLogger(l))
	return nil
}
