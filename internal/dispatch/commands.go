package dispatch

// Command pairs a command token and its alias with a description.
type Command struct {
	Cmd         string
	Alias       string
	Description string
}

// Option pairs a literal flag token with a description.
type Option struct {
	Flag        string
	Description string
}

var (
	// GenerateCommand asks for a new element.
	GenerateCommand = Command{Cmd: "generate", Alias: "g", Description: "Generate a new element."}

	// HelpCommand prints usage information. It is recognized anywhere in
	// the argument list.
	HelpCommand = Command{Cmd: "--help", Alias: "-h", Description: "Output usage information."}
)

// Test generation flags accepted by the generate command.
const (
	FlagWithTest = "--with-test"
	FlagNoTest   = "--no-test"
)

var options = []Option{
	{Flag: FlagWithTest, Description: "Enforce test file generation (if not set by default)."},
	{Flag: FlagNoTest, Description: "Disable test file generation (if set by default)."},
}

// Options returns the generate command's option allow-list in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// ValidFlags returns the literal flag tokens of Options.
func ValidFlags() []string {
	flags := make([]string, len(options))
	for i, opt := range options {
		flags[i] = opt.Flag
	}
	return flags
}

// IsValidOption reports whether token is exactly one of the allowed flags.
func IsValidOption(token string) bool {
	for _, opt := range options {
		if opt.Flag == token {
			return true
		}
	}
	return false
}

func (c Command) matches(token string) bool {
	return token == c.Cmd || token == c.Alias
}
