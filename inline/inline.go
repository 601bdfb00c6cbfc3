package inline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/darray-cli/darray/array"
	"github.com/darray-cli/darray/log"
	"github.com/darray-cli/darray/render"
	"github.com/darray-cli/darray/util"
	"github.com/samber/mo"
)

// ErrNothingToUndo is returned by undo when no mutating op has run yet.
var ErrNothingToUndo = errors.New("nothing to undo")

// Options configure a script run.
type Options struct {
	Out          io.Writer
	Ops          []Op
	Initial      []int
	Capacity     mo.Option[int]
	GrowthFactor mo.Option[float64]
	Json         bool
	Render       render.Options
}

// Step records the outcome of one op.
type Step struct {
	Op       string `json:"op"`
	Result   any    `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
	Items    []int  `json:"items"`
	Length   int    `json:"length"`
	Capacity int    `json:"capacity"`
}

// Output is the JSON document written in json mode.
type Output struct {
	Initial      []int   `json:"initial"`
	Steps        []*Step `json:"steps"`
	Final        []int   `json:"final"`
	GrowthFactor float64 `json:"growth_factor"`
}

// runner holds the state of one script execution.
type runner struct {
	arr     *array.Array[int]
	history util.Stack[*array.Array[int]]
	render  render.Options
}

// Run executes options.Ops in order and writes the report to options.Out.
// Execution stops at the first failing op; the steps run so far are still written.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	arr, err := newArray(options)
	if err != nil {
		return err
	}

	r := &runner{arr: arr, render: options.Render}
	output := &Output{Initial: arr.Slice(), Steps: make([]*Step, 0, len(options.Ops))}

	var failed error
	for i, op := range options.Ops {
		step := r.exec(op)
		output.Steps = append(output.Steps, step)

		log.With(log.Fields{
			"op":       step.Op,
			"length":   step.Length,
			"capacity": step.Capacity,
			"error":    step.Error,
		}, "inline step")

		if !options.Json {
			if _, err := fmt.Fprintln(options.Out, r.line(step)); err != nil {
				return err
			}
		}

		if step.Error != "" {
			failed = fmt.Errorf("op %d (%s): %s", i+1, op, step.Error)
			break
		}
	}

	output.Final = r.arr.Slice()
	output.GrowthFactor = r.arr.GrowthFactor()

	if options.Json {
		if err := writeJson(options.Out, output); err != nil {
			return err
		}
	}

	return failed
}

func newArray(options *Options) (*array.Array[int], error) {
	var arr *array.Array[int]

	if len(options.Initial) > 0 {
		arr = array.From(options.Initial...)
		if options.Capacity.IsPresent() {
			arr.SetCapacity(options.Capacity.MustGet())
		}
	} else {
		var err error
		arr, err = array.New[int](options.Capacity.OrElse(array.DefaultCapacity))
		if err != nil {
			return nil, err
		}
	}

	if options.GrowthFactor.IsPresent() {
		arr.SetGrowthFactor(options.GrowthFactor.MustGet())
	}

	return arr, nil
}

func (r *runner) exec(op Op) *Step {
	if op.mutates() {
		r.history.Push(r.arr.Clone())
	}

	result, err := r.apply(op)

	step := &Step{Op: op.String()}
	if err != nil {
		step.Error = err.Error()
		// failed ops never mutate, drop their snapshot
		if op.mutates() {
			r.history.Pop()
		}
	} else {
		step.Result = result
	}

	step.Items = r.arr.Slice()
	step.Length = r.arr.Len()
	step.Capacity = r.arr.Cap()
	return step
}

func (r *runner) apply(op Op) (any, error) {
	a := r.arr

	switch op.Name {
	case "add", "append":
		a.Append(op.intAt(0))
	case "prepend":
		a.Prepend(op.intAt(0))
	case "insert":
		return nil, a.Insert(op.intAt(0), op.intAt(1))
	case "set":
		return nil, a.Set(op.intAt(0), op.intAt(1))
	case "get":
		return a.Get(op.intAt(0))
	case "remove":
		return a.Remove(op.intAt(0)), nil
	case "removeat":
		return nil, a.RemoveAt(op.intAt(0))
	case "drop":
		_, err := a.DropLast()
		return nil, err
	case "clear":
		a.Clear()
	case "indexof":
		return a.IndexOf(op.intAt(0)), nil
	case "contains":
		return a.Contains(op.intAt(0)), nil
	case "capacity":
		if len(op.Args) > 0 {
			return a.SetCapacity(op.intAt(0)), nil
		}
		return a.Cap(), nil
	case "growth":
		if len(op.Args) > 0 {
			a.SetGrowthFactor(op.floatAt(0))
		}
		return a.GrowthFactor(), nil
	case "len":
		return a.Len(), nil
	case "print":
		return render.Join(a.Values(), r.render.Separator), nil
	case "undo":
		if r.history.Len() == 0 {
			return nil, ErrNothingToUndo
		}
		r.arr = r.history.Pop()
		log.Debugf("inline: undo, %d snapshots left", r.history.Len())
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, op.Name)
	}

	return nil, nil
}

// line formats a step for text mode: "op [= result] -> [items] len=N cap=M".
func (r *runner) line(step *Step) string {
	head := step.Op
	switch {
	case step.Error != "":
		head += " ! " + step.Error
	case step.Result != nil:
		head += fmt.Sprintf(" = %v", step.Result)
	}

	items := "[" + render.Join(r.arr.Values(), r.render.Separator) + "]"
	return fmt.Sprintf("%s -> %s len=%d cap=%d", head, items, step.Length, step.Capacity)
}

func writeJson(out io.Writer, output *Output) error {
	data, err := json.Marshal(output)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
