package simulation

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/equilibrium"
	"github.com/alexiusacademia/gocable/internal/models"
)

// Recorder persists and fetches simulation records
type Recorder interface {
	Save(ctx context.Context, in models.SimulationInput) (*models.Simulation, error)
	Get(ctx context.Context, id string) (*models.Simulation, error)
}

// Console drives a State from text commands, one per line
type Console struct {
	state    *State
	recorder Recorder
	logger   *zap.Logger
	out      io.Writer
}

// NewConsole creates a console. recorder may be nil, in which case save and
// load are unavailable.
func NewConsole(state *State, recorder Recorder, logger *zap.Logger, out io.Writer) *Console {
	return &Console{state: state, recorder: recorder, logger: logger, out: out}
}

const consoleHelp = `commands:
  t1 <±deg>          nudge θ1
  t2 <±deg>          nudge θ2
  angles <θ1> <θ2>   set both angles
  weight <N>         set the weight
  mass <kg>          set the weight from a mass
  drag <dy>          drag the weight by dy px (down is heavier)
  show               print the current state
  save               store the current state
  load <id>          restore a stored state
  quit`

// Run reads commands until EOF or quit
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	c.print(c.state.Snapshot())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := c.Exec(ctx, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// Exec runs a single command
func (c *Console) Exec(ctx context.Context, name string, args []string) error {
	var (
		res equilibrium.Result
		err error
	)

	switch name {
	case "t1", "t2":
		var d float64
		if d, err = floatArg(args, 0); err != nil {
			return err
		}
		if name == "t1" {
			res, err = c.state.NudgeTheta1(d)
		} else {
			res, err = c.state.NudgeTheta2(d)
		}
	case "angles":
		var t1, t2 float64
		if t1, err = floatArg(args, 0); err != nil {
			return err
		}
		if t2, err = floatArg(args, 1); err != nil {
			return err
		}
		res, err = c.state.SetAngles(t1, t2)
	case "weight", "mass":
		var v float64
		if v, err = floatArg(args, 0); err != nil {
			return err
		}
		if name == "weight" {
			res, err = c.state.SetWeight(v)
		} else {
			res, err = c.state.SetMass(v)
		}
	case "drag":
		var dy float64
		if dy, err = floatArg(args, 0); err != nil {
			return err
		}
		c.state.BeginDrag()
		res, err = c.state.DragTo(dy)
		c.state.EndDrag()
	case "show":
		res = c.state.Snapshot()
	case "save":
		return c.save(ctx)
	case "load":
		if len(args) < 1 {
			return fmt.Errorf("load needs a record id")
		}
		return c.load(ctx, args[0])
	case "help":
		fmt.Fprintln(c.out, consoleHelp)
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", name)
	}

	if err != nil {
		fmt.Fprintln(c.out, "keeping last valid state")
	}
	c.print(res)
	return err
}

func (c *Console) save(ctx context.Context) error {
	if c.recorder == nil {
		return fmt.Errorf("no record service configured")
	}

	rec := c.state.Record()
	saved, err := c.recorder.Save(ctx, models.SimulationInput{
		Weight:   &rec.Weight,
		Theta1:   &rec.Theta1,
		Theta2:   &rec.Theta2,
		Tension1: &rec.Tension1,
		Tension2: &rec.Tension2,
	})
	if err != nil {
		c.logger.Error("save simulation", zap.Error(err))
		return err
	}

	fmt.Fprintf(c.out, "saved %s\n", saved.ID)
	return nil
}

func (c *Console) load(ctx context.Context, id string) error {
	if c.recorder == nil {
		return fmt.Errorf("no record service configured")
	}

	rec, err := c.recorder.Get(ctx, id)
	if err != nil {
		c.logger.Error("load simulation", zap.String("id", id), zap.Error(err))
		return err
	}

	res, err := c.state.Load(*rec)
	c.print(res)
	return err
}

func (c *Console) print(r equilibrium.Result) {
	fmt.Fprintf(c.out, "W=%.2f N (%.2f kg)  θ1=%.0f°  θ2=%.0f°  T1=%.2f N  T2=%.2f N  body=(%.1f, %.1f)\n",
		r.Input.Weight, r.Mass, r.Input.Theta1, r.Input.Theta2,
		r.Tensions.T1, r.Tensions.T2, r.Position.X, r.Position.Y)
}

func floatArg(args []string, i int) (float64, error) {
	if len(args) <= i {
		return 0, fmt.Errorf("missing argument %d", i+1)
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, fmt.Errorf("argument %d: %q is not a number", i+1, args[i])
	}
	return v, nil
}
