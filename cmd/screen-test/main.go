package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/logrusorgru/aurora"
	"golang.org/x/image/font"
	"periph.io/x/host/v3"

	screen "github.com/BeatGlow/screenili"
	"github.com/BeatGlow/screenili/ili9488"
)

func main() {
	configFlag := flag.String("config", "", "YAML configuration file")
	busFlag := flag.String("bus", "", "SPI port name (default: use first available)")
	speedFlag := flag.Int64("speed", screen.DefaultSpeedHz, "SPI clock in Hz")
	sckPinFlag := flag.String("sck", "GPIO11", "SPI clock GPIO pin")
	mosiPinFlag := flag.String("mosi", "GPIO10", "SPI data GPIO pin")
	csPinFlag := flag.String("cs", "", "Chip select GPIO pin (default: driven by the SPI port)")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	widthFlag := flag.Int("width", screen.DefaultWidth, "Native display width")
	heightFlag := flag.Int("height", screen.DefaultHeight, "Native display height")
	rotateFlag := flag.String("rotate", "landscape", "Display rotation")
	manualFlag := flag.Bool("manual", false, "Disable auto-write, refresh explicitly")
	levelFlag := flag.String("log-level", "info", "Log level")
	fontFlag := flag.String("font", "", "TrueType font for the demo")
	imageFlag := flag.String("image", "", "Image shown by the demo")
	delayFlag := flag.Duration("delay", time.Second, "Self test delay between colors")
	flag.Parse()

	mode := "demo"
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [selftest|demo|shell]\n", os.Args[0])
		os.Exit(1)
	} else if flag.NArg() == 1 {
		mode = flag.Arg(0)
	}

	var (
		config *screen.Config
		err    error
	)
	if *configFlag != "" {
		if config, err = screen.LoadConfig(*configFlag); err != nil {
			fatal(err)
		}
	} else {
		rotation, err := screen.ParseRotation(*rotateFlag)
		if err != nil {
			fatal(err)
		}
		autoWrite := !*manualFlag
		config = &screen.Config{
			BusName:   *busFlag,
			SpeedHz:   *speedFlag,
			Clock:     screen.PinByName(*sckPinFlag),
			Data:      screen.PinByName(*mosiPinFlag),
			CS:        screen.PinByName(*csPinFlag),
			DC:        screen.PinByName(*dcPinFlag),
			Reset:     screen.PinByName(*resetPinFlag),
			Width:     *widthFlag,
			Height:    *heightFlag,
			Rotation:  rotation,
			AutoWrite: &autoWrite,
			LogLevel:  *levelFlag,
		}
	}

	if _, err = host.Init(); err != nil {
		fatal(err)
	}

	var face font.Face
	if *fontFlag != "" {
		if face, err = ili9488.LoadFont(*fontFlag, 24); err != nil {
			fatal(err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = screen.With(config, func(d *screen.Device) error {
		fmt.Printf("using display: %s\n", aurora.Bold(d))
		switch mode {
		case "selftest":
			d.SelfTest(*delayFlag)
			return nil
		case "demo":
			return demo(ctx, d, face, *imageFlag)
		case "shell":
			return shell(d, face)
		default:
			return fmt.Errorf("unsupported mode %q", mode)
		}
	})
	if err != nil {
		fatal(err)
	}
}

func demo(ctx context.Context, d *screen.Device, face font.Face, image string) error {
	var (
		w, h   = d.Width(), d.Height()
		white  = screen.Color565(0xff, 0xff, 0xff)
		steps  []func() error
		colors = []uint16{
			screen.Color565(0xff, 0x00, 0x00),
			screen.Color565(0xff, 0x80, 0x00),
			screen.Color565(0xff, 0xff, 0x00),
			screen.Color565(0x00, 0xff, 0x00),
			screen.Color565(0x00, 0x80, 0xff),
			screen.Color565(0x80, 0x00, 0xff),
		}
	)

	steps = append(steps,
		func() error { return d.Fill(0x0000) },
		func() error { return d.Rect(0, 0, w, h, white) },
	)
	// Color bars along the top.
	for i, c := range colors {
		bar := w / len(colors)
		steps = append(steps, func() error { return d.FillRect(i*bar, 10, bar, h/4, c) })
	}
	for i := 3; i <= 8; i++ {
		var (
			r = h / 10
			x = r + (i-3)*(w/6) + 10
			y = h/2 + r
			c = colors[(i-3)%len(colors)]
		)
		if i%2 == 0 {
			steps = append(steps, func() error { return d.FillPolygon(i, x, y, r, c, 90) })
		} else {
			steps = append(steps, func() error { return d.Polygon(i, x, y, r, c, 90) })
		}
	}
	steps = append(steps,
		func() error { return d.Ellipse(w/2, h*3/4, w/4, h/10, white) },
		func() error { return d.FillCircle(w/2, h*3/4, h/20, colors[0]) },
		func() error { return d.Text8x8(5, h-12, "screenili demo", white, 0x0000, 0) },
	)
	if face != nil {
		steps = append(steps, func() error {
			return d.Text(w/2, h-40, "Hello", &screen.TextOpts{Face: face, Color: white, Spacing: 1})
		})
	}
	if image != "" {
		steps = append(steps, func() error { return d.Image(image, w*3/4, h/2, w/4, h/4) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	if !d.AutoWrite() {
		if err := d.Refresh(); err != nil {
			return err
		}
	}

	// Sweep a line around the center until interrupted.
	var (
		ticker = time.NewTicker(50 * time.Millisecond)
		cx, cy = w / 2, h / 4
		radius = min(w, h) / 8
		angle  float64
	)
	defer ticker.Stop()
	fmt.Println("hit control-c to stop...")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		x := cx + int(float64(radius)*math.Cos(angle))
		y := cy + int(float64(radius)*math.Sin(angle))
		if err := d.Line(cx, cy, x, y, colors[int(angle*2)%len(colors)]); err != nil {
			return err
		}
		if !d.AutoWrite() {
			if err := d.Refresh(); err != nil {
				return err
			}
		}
		angle += math.Pi / 30
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, aurora.Red("fatal:"), err)
	os.Exit(1)
}
