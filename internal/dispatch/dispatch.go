package dispatch

import (
	"slices"

	"github.com/elemgen-labs/elemgen/internal/element"
)

// Mode selects how the first argument is treated.
type Mode int

const (
	// ModeDirect expects "generate" or "g" as the first argument.
	ModeDirect Mode = iota
	// ModeScript is used when the entry point itself stands for the
	// generate command, so arguments start at the element.
	ModeScript
)

// Action is what an invocation asks for.
type Action int

const (
	ActionHelp Action = iota
	ActionGenerate
)

func (a Action) String() string {
	switch a {
	case ActionHelp:
		return "help"
	case ActionGenerate:
		return "generate"
	default:
		return "unknown"
	}
}

// Request is a fully validated generate invocation.
type Request struct {
	Element  element.Element
	Name     string
	Options  []string // validated flags, in argument order
	WithTest bool     // element default with the flags applied left to right
}

// HasConflictingOptions reports whether both test flags were passed.
func (r *Request) HasConflictingOptions() bool {
	return slices.Contains(r.Options, FlagWithTest) && slices.Contains(r.Options, FlagNoTest)
}

// Invocation is the outcome of a successful Parse. Request is set only for
// ActionGenerate.
type Invocation struct {
	Action  Action
	Request *Request
}

// Parse classifies args. Help anywhere in args wins over everything else,
// and in script mode an empty argument list is a help request too;
// otherwise each positional check runs left to right and the first failure
// is returned as a Classified error.
func Parse(mode Mode, args []string, reg *element.Registry) (Invocation, error) {
	if slices.ContainsFunc(args, HelpCommand.matches) {
		return Invocation{Action: ActionHelp}, nil
	}
	// A bare script run prints usage.
	if mode == ModeScript && len(args) == 0 {
		return Invocation{Action: ActionHelp}, nil
	}

	rest := args
	if mode == ModeDirect {
		cmd := at(rest, 0)
		if !GenerateCommand.matches(cmd) {
			return Invocation{}, &UsageError{Command: cmd}
		}
		rest = tail(rest, 1)
	}

	token := at(rest, 0)
	el, found := reg.Lookup(token)
	if !found {
		return Invocation{}, &UnknownElementError{Element: token}
	}

	name := at(rest, 1)
	if name == "" {
		return Invocation{}, &MissingNameError{}
	}

	opts := tail(rest, 2)
	if err := validateOptions(opts); err != nil {
		return Invocation{}, err
	}

	return Invocation{
		Action: ActionGenerate,
		Request: &Request{
			Element:  el,
			Name:     name,
			Options:  slices.Clone(opts),
			WithTest: resolveWithTest(el.DefaultWithTest, opts),
		},
	}, nil
}

func validateOptions(opts []string) error {
	for _, opt := range opts {
		if !IsValidOption(opt) {
			return &InvalidOptionError{Option: opt, Valid: ValidFlags()}
		}
	}
	return nil
}

func resolveWithTest(def bool, opts []string) bool {
	withTest := def
	for _, opt := range opts {
		switch opt {
		case FlagWithTest:
			withTest = true
		case FlagNoTest:
			withTest = false
		}
	}
	return withTest
}

// at returns args[i], or "" when args is too short.
func at(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func tail(args []string, from int) []string {
	if from >= len(args) {
		return nil
	}
	return args[from:]
}
