package dispatch

import (
	"errors"
	"fmt"
	"io"

	"github.com/elemgen-labs/elemgen/internal/branding"
)

// ConfigError wraps failures that happen before arguments are looked at,
// such as an unreadable config file or an invalid element registry.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string    { return message(e) }
func (e *ConfigError) Unwrap() error    { return e.Err }
func (e *ConfigError) Category() string { return "Invalid configuration" }
func (e *ConfigError) Value() string    { return e.Err.Error() }
func (e *ConfigError) Guidance() string {
	return fmt.Sprintf("Check the config file and %s_* environment variables.", branding.EnvPrefix())
}

// RenderError writes err in the framed form shared by every error:
//
//	<blank line>
//	Error. <category>: <value>.
//	<guidance>
//	<blank line>
//
// Errors that are not Classified are rendered as configuration errors.
func RenderError(w io.Writer, err error) error {
	var c Classified
	if !errors.As(err, &c) {
		c = &ConfigError{Err: err}
	}

	head := c.Category()
	if v := c.Value(); v != "" {
		head += ": " + v
	}
	_, werr := fmt.Fprintf(w, "\nError. %s. \n%s\n\n", head, c.Guidance())
	return werr
}
