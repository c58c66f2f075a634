// figuretool inspects and renders the articulated figure without a window.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/Faultbox/robotarm/internal/config"
	"github.com/Faultbox/robotarm/internal/controls"
	"github.com/Faultbox/robotarm/internal/engine/raster"
	"github.com/Faultbox/robotarm/internal/figure"
	"github.com/Faultbox/robotarm/internal/logger"
	"github.com/Faultbox/robotarm/internal/snapshot"
	"github.com/Faultbox/robotarm/internal/trace"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "controls":
		err = cmdControls(os.Stdout, args)
	case "trace":
		err = cmdTrace(args)
	case "dump":
		err = cmdDump(args)
	case "snapshot", "snap":
		err = cmdSnapshot(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`figuretool - articulated figure inspector

Usage:
  figuretool <command> [options]

Commands:
  controls [key...]        List the figure's controls, or only the named ones
  trace [options]          Print the indented draw list
  dump [options]           Write the draw list as YAML
  snapshot [options]       Render the figure to a PNG, WebP or TGA image

Common options:
  -config <file>   config file (defaults to the standard locations)
  -frames <n>      animation steps to run before composing
  -x, -y, -z       figure position
  -turn <deg>      figure yaw
  -variant <n>     0 round, 1 boxy
  -boxy-arms       drive boxy arms from the animation

Examples:
  figuretool trace -frames 10 -variant 1
  figuretool dump -turn 30 -o frame.yaml
  figuretool snapshot -frames 25 -format webp -size 256 -o figure.webp`)
}

func cmdControls(out io.Writer, keys []string) error {
	decls := controls.Declarations[:]
	if len(keys) > 0 {
		decls = make([]controls.Declaration, 0, len(keys))
		for _, key := range keys {
			d, ok := controls.Lookup(key)
			if !ok {
				return fmt.Errorf("unknown control %q", key)
			}
			decls = append(decls, d)
		}
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tLABEL\tMIN\tMAX\tSTEP\tDEFAULT")
	for _, d := range decls {
		fmt.Fprintf(w, "%s\t%s\t%g\t%g\t%g\t%g\n", d.Key, d.Label, d.Min, d.Max, d.Step, d.Default)
	}
	return w.Flush()
}

// frameOptions are the flags shared by every command that composes a frame.
type frameOptions struct {
	configPath string
	frames     int
	x, y, z    float64
	turn       float64
	variant    int
	boxyArms   bool
}

func (o *frameOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.IntVar(&o.frames, "frames", 0, "Animation steps to run before composing")
	fs.Float64Var(&o.x, "x", 0, "X position")
	fs.Float64Var(&o.y, "y", 0, "Y position")
	fs.Float64Var(&o.z, "z", 0, "Z position")
	fs.Float64Var(&o.turn, "turn", 0, "Yaw in degrees")
	fs.IntVar(&o.variant, "variant", 0, "Body variant: 0 round, 1 boxy")
	fs.BoolVar(&o.boxyArms, "boxy-arms", false, "Drive boxy arms from the animation")
}

// composed is a frame ready for export.
type composed struct {
	cfg     *config.Config
	frame   int
	inputs  figure.ControlInputs
	offsets figure.JointOffsets
	cmds    []figure.Command
}

// compose loads config, overlays the flags that were set and composes the
// frame after the requested number of animation steps.
func (o *frameOptions) compose(fs *flag.FlagSet) (*composed, error) {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if o.frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", o.frames)
	}

	panel := controls.NewPanel()
	cfg.Controls.Apply(panel)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "x":
			panel.Set(controls.PositionX, o.x)
		case "y":
			panel.Set(controls.PositionY, o.y)
		case "z":
			panel.Set(controls.PositionZ, o.z)
		case "turn":
			panel.Set(controls.Turn, o.turn)
		case "variant":
			panel.Set(controls.BodyVariant, float64(o.variant))
		case "boxy-arms":
			cfg.Figure.AnimateBoxyArms = o.boxyArms
		}
	})

	fig := figure.New(cfg.Figure.Options())
	for i := 0; i < o.frames; i++ {
		fig.Animation().Advance()
	}

	in := figure.ReadControls(panel)
	cmds := fig.Render(in, false)
	logger.Debug("frame composed",
		zap.Int("frames", o.frames),
		zap.Stringer("variant", in.BodyVariant),
		zap.Int("commands", len(cmds)),
	)

	return &composed{
		cfg:     cfg,
		frame:   o.frames,
		inputs:  in,
		offsets: fig.Animation().Offsets(),
		cmds:    cmds,
	}, nil
}

func cmdTrace(args []string) error {
	fs := flag.NewFlagSet("trace", flag.ExitOnError)
	var opts frameOptions
	opts.register(fs)
	fs.Parse(args)

	c, err := opts.compose(fs)
	if err != nil {
		return err
	}

	fmt.Printf("# frame %d, %s body, offsets left=%g right=%g head=%g\n",
		c.frame, c.inputs.BodyVariant, c.offsets.LeftArm, c.offsets.RightArm, c.offsets.Head)
	return trace.WriteText(os.Stdout, c.cmds)
}

func cmdDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	var opts frameOptions
	opts.register(fs)
	output := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(args)

	c, err := opts.compose(fs)
	if err != nil {
		return err
	}

	frame := trace.NewFrame(c.frame, c.inputs, c.offsets, c.cmds)
	if *output == "" {
		return trace.WriteYAML(os.Stdout, frame)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := trace.WriteYAML(f, frame); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("frame written", zap.String("path", *output))
	return nil
}

func cmdSnapshot(args []string) error {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	var opts frameOptions
	opts.register(fs)
	output := fs.String("o", "", "Output file (default: timestamped file in the snapshot dir)")
	format := fs.String("format", "", "Image format: png, webp or tga (default from config)")
	size := fs.Int("size", 0, "Image size in pixels (default from config)")
	supersample := fs.Int("supersample", 0, "Render scale before downsampling (default from config)")
	fs.Parse(args)

	c, err := opts.compose(fs)
	if err != nil {
		return err
	}
	snap := c.cfg.Snapshot

	f := snap.SnapshotFormat()
	if *format != "" {
		if f, err = snapshot.ParseFormat(*format); err != nil {
			return err
		}
	} else if *output != "" {
		// Let the file extension pick the format.
		if ext, err := snapshot.ParseFormat(trimDot(filepath.Ext(*output))); err == nil {
			f = ext
		}
	}
	if *size > 0 {
		snap.Size = *size
	}
	if *supersample > 0 {
		snap.Supersample = *supersample
	}

	img := raster.Render(c.cmds, raster.Options{
		Width:      snap.Size * snap.Supersample,
		Height:     snap.Size * snap.Supersample,
		ViewProj:   c.cfg.Render.Camera().ViewProjection(1),
		Detail:     c.cfg.Render.TessellationDetail(),
		Sun:        c.cfg.Render.Sun(),
		Background: background(c.cfg.Render.Background),
	})
	img = snapshot.Downsample(img, snap.Size, snap.Size)

	w := snapshot.NewWriter(snap.Dir, "figure", f)
	var path string
	if *output != "" {
		path, err = w.WriteImageTo(*output, img)
	} else {
		path, err = w.WriteImage(img)
	}
	if err != nil {
		return err
	}

	logger.Info("snapshot written",
		zap.String("path", path),
		zap.String("format", string(f)),
		zap.Int("size", snap.Size),
	)
	fmt.Println(path)
	return nil
}

func background(rgb [3]float32) color.NRGBA {
	to8 := func(v float32) uint8 {
		return uint8(min(max(v, 0), 1)*255 + 0.5)
	}
	return color.NRGBA{R: to8(rgb[0]), G: to8(rgb[1]), B: to8(rgb[2]), A: 255}
}

func trimDot(ext string) string {
	if len(ext) > 0 && ext[0] == '.' {
		return ext[1:]
	}
	return ext
}
