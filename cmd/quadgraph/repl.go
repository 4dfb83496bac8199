package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/quadgraph"
	"github.com/google/shlex"
)

const helpText = `Enter a formula such as "1x^2 -1x +1" to plot it, or a command:
  :pan up|down|left|right [n]  pan by n ticks of held input (default 1)
  :zoom d                      add d to the zoom
  :cursor x y                  place the cursor at pixel (x, y)
  :nocursor                    remove the cursor
  :center x y                  center the view on world point (x, y)
  :write [file]                save the current frame as PNG
  :help                        show this text
  :quit                        leave`

// command is one parsed input line. An empty name means formula.
type command struct {
	name    string
	formula string
	args    []float64
	dir     quadgraph.InputState
	path    string
}

var errUsage = errors.New("usage")

// parseCommand parses a line of interactive input. Lines starting with ':'
// are commands split with shell quoting rules; anything else is a formula.
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, ":") {
		return command{formula: line}, nil
	}
	fields, err := shlex.Split(line[1:])
	if err != nil {
		return command{}, err
	}
	if len(fields) == 0 {
		return command{}, fmt.Errorf("%w: empty command", errUsage)
	}

	cmd := command{name: fields[0]}
	args := fields[1:]
	switch cmd.name {
	case "pan":
		if len(args) < 1 || len(args) > 2 {
			return command{}, fmt.Errorf("%w: :pan up|down|left|right [n]", errUsage)
		}
		switch args[0] {
		case "up":
			cmd.dir.Up = true
		case "down":
			cmd.dir.Down = true
		case "left":
			cmd.dir.Left = true
		case "right":
			cmd.dir.Right = true
		default:
			return command{}, fmt.Errorf("%w: unknown direction %q", errUsage, args[0])
		}
		cmd.args = []float64{1}
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return command{}, fmt.Errorf("%w: bad tick count %q", errUsage, args[1])
			}
			cmd.args[0] = float64(n)
		}
	case "zoom":
		if cmd.args, err = parseFloats(args, 1); err != nil {
			return command{}, err
		}
	case "cursor", "center":
		if cmd.args, err = parseFloats(args, 2); err != nil {
			return command{}, err
		}
	case "write":
		if len(args) > 1 {
			return command{}, fmt.Errorf("%w: :write [file]", errUsage)
		}
		if len(args) == 1 {
			cmd.path = args[0]
		}
	case "nocursor", "help", "quit":
		if len(args) != 0 {
			return command{}, fmt.Errorf("%w: :%s takes no arguments", errUsage, cmd.name)
		}
	default:
		return command{}, fmt.Errorf("%w: unknown command :%s", errUsage, cmd.name)
	}
	return cmd, nil
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: want %d numbers, got %d", errUsage, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out[i] = v
	}
	return out, nil
}

// session is an interactive plotting session backed by one canvas.
type session struct {
	r      *quadgraph.Renderer
	dc     *gg.Context
	out    io.Writer
	output string
}

func newSession(s settings, out io.Writer, output string) (*session, error) {
	dc, err := s.newContext()
	if err != nil {
		return nil, err
	}
	return &session{r: s.newRenderer(), dc: dc, out: out, output: output}, nil
}

// Close releases the canvas.
func (s *session) Close() error { return s.dc.Close() }

// exec applies cmd and reports whether the session should end. Errors are
// for the user; the session stays usable.
func (s *session) exec(cmd command) (bool, error) {
	switch cmd.name {
	case "":
		if cmd.formula == "" {
			return false, nil
		}
		c, err := s.r.SetFormula(cmd.formula)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "y = %s\n", c)
	case "pan":
		for range int(cmd.args[0]) {
			s.r.ApplyInput(cmd.dir)
		}
	case "zoom":
		s.r.AddZoom(cmd.args[0])
	case "cursor":
		s.r.SetCursor(cmd.args[0], cmd.args[1])
	case "nocursor":
		s.r.ClearCursor()
	case "center":
		s.r.SetCenter(cmd.args[0], cmd.args[1])
	case "write":
		path := cmd.path
		if path == "" {
			path = s.output
		}
		if err := s.render(); err != nil {
			return false, err
		}
		if err := s.dc.SavePNG(path); err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "wrote %s\n", path)
	case "help":
		fmt.Fprintln(s.out, helpText)
	case "quit":
		return true, nil
	}
	return false, s.render()
}

// render draws a frame if anything changed and prints a status line.
func (s *session) render() error {
	drawn, err := s.r.Render(s.dc)
	if err != nil || !drawn {
		return err
	}
	f := s.r.Frame()
	vp := s.r.Viewport()
	fmt.Fprintf(s.out, "center %s zoom %g: %d/%d points visible",
		quadgraph.FormatPoint(vp.CenterX, vp.CenterY), vp.Zoom, f.Visible, f.Samples)
	if f.Highlighted {
		fmt.Fprintf(s.out, ", nearest %s", quadgraph.FormatPoint(f.Nearest.X, f.Nearest.Y))
	}
	fmt.Fprintln(s.out)
	return nil
}

// run reads lines from in until EOF, :quit or ctx is done.
func (s *session) run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd, err := parseCommand(sc.Text())
		if err == nil {
			var quit bool
			if quit, err = s.exec(cmd); quit {
				return nil
			}
		}
		if err != nil {
			fmt.Fprintln(s.out, err)
		}
		fmt.Fprint(s.out, "> ")
	}
	return sc.Err()
}
