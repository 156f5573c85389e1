package dispatch

import (
	"fmt"
	"strings"
)

// Classified is implemented by every error Parse returns. RenderError uses
// it to frame the message the same way for all of them.
type Classified interface {
	error
	Category() string
	Value() string
	Guidance() string
}

// UsageError reports a first argument that is not a known command.
type UsageError struct {
	Command string
}

func (e *UsageError) Error() string    { return message(e) }
func (e *UsageError) Category() string { return "Invalid command" }
func (e *UsageError) Value() string    { return orNone(e.Command) }
func (e *UsageError) Guidance() string {
	return "See " + HelpCommand.Cmd + " for a list of available commands."
}

// UnknownElementError reports an element token that matches no registry
// name or alias.
type UnknownElementError struct {
	Element string
}

func (e *UnknownElementError) Error() string    { return message(e) }
func (e *UnknownElementError) Category() string { return "Invalid element" }
func (e *UnknownElementError) Value() string    { return orNone(e.Element) }
func (e *UnknownElementError) Guidance() string {
	return "See " + HelpCommand.Cmd + " for a list of available elements."
}

// MissingNameError reports an absent or empty target name.
type MissingNameError struct{}

func (e *MissingNameError) Error() string    { return message(e) }
func (e *MissingNameError) Category() string { return "Name is required" }
func (e *MissingNameError) Value() string    { return "" }
func (e *MissingNameError) Guidance() string {
	return "See " + HelpCommand.Cmd + " for usage information."
}

// InvalidOptionError reports a trailing argument outside the option allow-list.
type InvalidOptionError struct {
	Option string
	Valid  []string
}

func (e *InvalidOptionError) Error() string    { return message(e) }
func (e *InvalidOptionError) Category() string { return "Invalid option" }
func (e *InvalidOptionError) Value() string    { return orNone(e.Option) }
func (e *InvalidOptionError) Guidance() string {
	return "Available options: " + strings.Join(e.Valid, ", ")
}

// message is the single-line form used by Error().
func message(c Classified) string {
	if v := c.Value(); v != "" {
		return fmt.Sprintf("%s: %s", c.Category(), v)
	}
	return c.Category()
}

func orNone(token string) string {
	if token == "" {
		return "<none>"
	}
	return token
}
