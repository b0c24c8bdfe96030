// Command tkpathdemo renders a TOML scene of path, text and image items
// through one of the tkpath backends.
//
//	tkpathdemo render -o out.png scene.toml
//	tkpathdemo render --backend retained scene.toml > out.png
//	tkpathdemo record scene.toml
//	tkpathdemo backends
package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/gogpu/tkpath"
	_ "github.com/gogpu/tkpath/backend/immediate"
	_ "github.com/gogpu/tkpath/backend/retained"
	_ "github.com/gogpu/tkpath/backend/scanline"
	"github.com/gogpu/tkpath/recording"
)

const defaultBackend = "scanline"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "tkpathdemo: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tkpathdemo"
	app.Usage = "Render tkpath scenes"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log unsupported features and other debug output to stderr",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			tkpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "render",
			Usage:     "Render a scene to PNG",
			ArgsUsage: "<scene.toml>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "-",
					Usage:   "Output PNG file, - for stdout",
				},
				&cli.StringFlag{
					Name:    "backend",
					Aliases: []string{"b"},
					Usage:   "Backend name, overriding the scene",
				},
				&cli.BoolFlag{
					Name:  "no-antialias",
					Usage: "Render without anti-aliasing",
				},
			},
			Action: runRender,
		},
		{
			Name:      "record",
			Usage:     "Print the drawing calls a scene makes",
			ArgsUsage: "<scene.toml>",
			Action:    runRecord,
		},
		{
			Name:  "backends",
			Usage: "List the registered backends",
			Action: func(c *cli.Context) error {
				for _, name := range tkpath.Backends() {
					if name == recording.Name {
						fmt.Fprintln(c.App.Writer, name, "(record only)")
						continue
					}
					fmt.Fprintln(c.App.Writer, name)
				}
				return nil
			},
		},
	}
	return app
}

func sceneArg(c *cli.Context) (*Scene, string, error) {
	if c.NArg() != 1 {
		return nil, "", errors.New("expected exactly one scene file")
	}
	path := c.Args().First()
	s, err := LoadSceneFile(path)
	if err != nil {
		return nil, "", err
	}
	return s, filepath.Dir(path), nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func runRender(c *cli.Context) error {
	s, dir, err := sceneArg(c)
	if err != nil {
		return err
	}
	backend := c.String("backend")
	if backend == "" {
		backend = orDefault(s.Backend, defaultBackend)
	}
	var opts []tkpath.Option
	if c.Bool("no-antialias") {
		opts = append(opts, tkpath.WithAntiAlias(false))
	}
	img, err := s.Render(backend, dir, opts...)
	if err != nil {
		return err
	}

	out := c.String("output")
	if out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PNG data to a terminal, use -o")
		}
		return png.Encode(c.App.Writer, img)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runRecord(c *cli.Context) error {
	s, dir, err := sceneArg(c)
	if err != nil {
		return err
	}
	rec := recording.NewRecorder(s.Width, s.Height)
	if err := s.Draw(tkpath.Track(rec), dir); err != nil {
		return err
	}
	return dumpRecording(c.App.Writer, rec.FinishRecording())
}

func dumpRecording(w io.Writer, r *recording.Recording) error {
	for _, cmd := range r.Commands() {
		if _, err := fmt.Fprintf(w, "%s %+v\n", cmd.Type(), cmd); err != nil {
			return err
		}
	}
	return nil
}
