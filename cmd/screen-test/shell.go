package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/logrusorgru/aurora"
	"golang.org/x/image/font"

	screen "github.com/BeatGlow/screenili"
)

const shellHelp = `commands:
  fill <rrggbb>                 fill the display
  text <x> <y> <text...>        draw text
  rotate <rotation>             set rotation (name or degrees)
  level <level>                 set log level
  call <name> [arg]             run a driver operation
  scroll <offset>               scroll vertically
  on | off                      display power
  sleep | wake                  sleep mode
  refresh                       write the frame buffer
  cleanup                       clear, turn off and exit
  quit                          exit`

func shell(d *screen.Device, face font.Face) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "screen> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("fill"),
			readline.PcItem("text"),
			readline.PcItem("rotate",
				readline.PcItem("landscape"),
				readline.PcItem("portrait"),
				readline.PcItem("reverse_landscape"),
				readline.PcItem("reverse_portrait"),
			),
			readline.PcItem("level",
				readline.PcItem("debug"),
				readline.PcItem("info"),
				readline.PcItem("warn"),
				readline.PcItem("error"),
				readline.PcItem("none"),
			),
			readline.PcItem("call"),
			readline.PcItem("scroll"),
			readline.PcItem("on"),
			readline.PcItem("off"),
			readline.PcItem("sleep"),
			readline.PcItem("wake"),
			readline.PcItem("refresh"),
			readline.PcItem("cleanup"),
			readline.PcItem("quit"),
			readline.PcItem("help"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	out := rl.Stdout()
	fmt.Fprintln(out, shellHelp)
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil {
			return nil
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "quit", "exit":
			return nil
		case "cleanup":
			return d.Cleanup(screen.DefaultCleanupOptions)
		default:
			if err := runCommand(out, d, face, args); err != nil {
				fmt.Fprintln(out, aurora.Red("error:"), err)
			}
		}
	}
}

func runCommand(out io.Writer, d *screen.Device, face font.Face, args []string) error {
	switch cmd, args := args[0], args[1:]; cmd {
	case "help":
		fmt.Fprintln(out, shellHelp)
		return nil
	case "fill":
		if len(args) != 1 {
			return errors.New("usage: fill <rrggbb>")
		}
		c, err := parseColor(args[0])
		if err != nil {
			return err
		}
		return d.Fill(c)
	case "text":
		if len(args) < 3 {
			return errors.New("usage: text <x> <y> <text...>")
		}
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		opts := screen.DefaultTextOpts
		opts.Face = face
		return d.Text(x, y, strings.Join(args[2:], " "), &opts)
	case "rotate":
		if len(args) != 1 {
			return errors.New("usage: rotate <rotation>")
		}
		r, err := screen.ParseRotation(args[0])
		if err != nil {
			return err
		}
		if err = d.SetRotation(r); err != nil {
			return err
		}
		fmt.Fprintf(out, "rotation %s, %dx%d\n", d.Rotation(), d.Width(), d.Height())
		return nil
	case "level":
		if len(args) != 1 {
			fmt.Fprintln(out, d.LogLevel())
			return nil
		}
		return d.SetLogLevel(args[0])
	case "call":
		if len(args) == 0 {
			return errors.New("usage: call <name> [arg]")
		}
		var callArgs []any
		for _, arg := range args[1:] {
			callArgs = append(callArgs, parseArg(arg))
		}
		v, err := d.Call(args[0], callArgs...)
		if err != nil {
			return err
		}
		if v != nil {
			fmt.Fprintln(out, v)
		}
		return nil
	case "scroll":
		if len(args) != 1 {
			return errors.New("usage: scroll <offset>")
		}
		offset, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		return d.Scroll(offset)
	case "on":
		return d.On()
	case "off":
		return d.Off()
	case "sleep":
		return d.Sleep(true)
	case "wake":
		return d.Sleep(false)
	case "refresh":
		return d.Refresh()
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

// parseColor parses a 24-bit hex color into RGB565.
func parseColor(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil || v > 0xffffff {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	return screen.Color565(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func parseArg(s string) any {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	return s
}
