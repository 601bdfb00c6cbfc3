// Package inline implements the non-interactive, scriptable mode: a list of operations
// executed one after another against a single array.
package inline

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

var (
	// ErrUnknownOp is returned for an operation name that does not exist.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArity is returned when an operation gets too many or too few arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrBadArgument is returned for an argument that is not a number of the expected kind.
	ErrBadArgument = errors.New("bad argument")
	// ErrEmptyScript is returned by Parse when the script holds no operations.
	ErrEmptyScript = errors.New("empty script")
)

type argKind int

const (
	intArg argKind = iota
	floatArg
)

// opSpec describes the arguments of an operation.
// An optional op accepts either all of its args or none of them.
type opSpec struct {
	args     []argKind
	optional bool
	mutates  bool
}

var specs = map[string]opSpec{
	"add":      {args: []argKind{intArg}, mutates: true},
	"append":   {args: []argKind{intArg}, mutates: true},
	"prepend":  {args: []argKind{intArg}, mutates: true},
	"insert":   {args: []argKind{intArg, intArg}, mutates: true},
	"set":      {args: []argKind{intArg, intArg}, mutates: true},
	"get":      {args: []argKind{intArg}},
	"remove":   {args: []argKind{intArg}, mutates: true},
	"removeat": {args: []argKind{intArg}, mutates: true},
	"drop":     {mutates: true},
	"clear":    {mutates: true},
	"indexof":  {args: []argKind{intArg}},
	"contains": {args: []argKind{intArg}},
	"capacity": {args: []argKind{intArg}, optional: true, mutates: true},
	"growth":   {args: []argKind{floatArg}, optional: true, mutates: true},
	"len":      {},
	"print":    {},
	"undo":     {},
}

// Names returns every operation name, sorted.
func Names() []string {
	names := lo.Keys(specs)
	sort.Strings(names)
	return names
}

// Op is a single parsed operation.
type Op struct {
	Name string
	Args []string
}

func (o Op) String() string {
	return strings.TrimSpace(o.Name + " " + strings.Join(o.Args, " "))
}

// mutates reports whether executing o may change the array.
func (o Op) mutates() bool {
	spec := specs[o.Name]
	return spec.mutates && (!spec.optional || len(o.Args) > 0)
}

// Args are validated by Parse, so the conversions below cannot fail.

func (o Op) intAt(i int) int {
	return lo.Must(strconv.Atoi(o.Args[i]))
}

func (o Op) floatAt(i int) float64 {
	return lo.Must(strconv.ParseFloat(o.Args[i], 64))
}

// Parse splits src into operations separated by ';' or newlines.
// Blank entries and lines starting with '#' are skipped. Names are case-insensitive.
func Parse(src string) ([]Op, error) {
	var ops []Op

	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		for _, entry := range strings.Split(line, ";") {
			fields := strings.Fields(entry)
			if len(fields) == 0 {
				continue
			}

			op := Op{Name: strings.ToLower(fields[0]), Args: fields[1:]}
			if err := validate(op); err != nil {
				return nil, fmt.Errorf("op %d (%s): %w", len(ops)+1, op, err)
			}

			ops = append(ops, op)
		}
	}

	if len(ops) == 0 {
		return nil, ErrEmptyScript
	}

	return ops, nil
}

func validate(op Op) error {
	spec, ok := specs[op.Name]
	if !ok {
		if suggestion := suggest(op.Name); suggestion != "" {
			return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownOp, op.Name, suggestion)
		}
		return fmt.Errorf("%w %q", ErrUnknownOp, op.Name)
	}

	if len(op.Args) != len(spec.args) && !(spec.optional && len(op.Args) == 0) {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op.Name, len(spec.args), len(op.Args))
	}

	for i, arg := range op.Args {
		var err error
		switch spec.args[i] {
		case intArg:
			_, err = strconv.Atoi(arg)
		case floatArg:
			_, err = strconv.ParseFloat(arg, 64)
		}

		if err != nil {
			return fmt.Errorf("%w %q", ErrBadArgument, arg)
		}
	}

	return nil
}

// suggest returns the closest operation name, or an empty string.
func suggest(name string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, Names())
	if len(ranks) == 0 {
		return ""
	}

	sort.Sort(ranks)
	return ranks[0].Target
}
