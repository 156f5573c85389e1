package dispatch

import (
	"errors"
	"testing"

	"github.com/elemgen-labs/elemgen/internal/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRegistry(t *testing.T) *element.Registry {
	t.Helper()
	reg, err := element.Default()
	require.NoError(t, err)
	return reg
}

func TestParseHelpWinsAnywhere(t *testing.T) {
	reg := defaultRegistry(t)

	cases := [][]string{
		{"--help"},
		{"-h"},
		{"generate", "component", "x", "--help"},
		{"bogus", "-h"},
		{"g", "nope", "", "--bogus", "--help"},
		{"-h", "generate"},
	}
	for _, args := range cases {
		for _, mode := range []Mode{ModeDirect, ModeScript} {
			inv, err := Parse(mode, args, reg)
			require.NoError(t, err, "args %q", args)
			assert.Equal(t, ActionHelp, inv.Action, "args %q", args)
			assert.Nil(t, inv.Request)
		}
	}
}

func TestParseInvalidCommand(t *testing.T) {
	reg := defaultRegistry(t)

	tests := []struct {
		args  []string
		value string
	}{
		{nil, "<none>"},
		{[]string{}, "<none>"},
		{[]string{"create", "component", "x"}, "create"},
		{[]string{"Generate"}, "Generate"},
		{[]string{"component", "x"}, "component"},
		{[]string{"--with-test"}, "--with-test"},
		{[]string{"--HELP"}, "--HELP"},
	}
	for _, tt := range tests {
		_, err := Parse(ModeDirect, tt.args, reg)
		var ue *UsageError
		require.True(t, errors.As(err, &ue), "args %q: want *UsageError, got %v", tt.args, err)
		assert.Equal(t, tt.value, ue.Value())
		assert.Equal(t, "Invalid command", ue.Category())
	}
}

func TestParseInvalidElement(t *testing.T) {
	reg := defaultRegistry(t)

	tests := []struct {
		args  []string
		value string
	}{
		{[]string{"generate"}, "<none>"},
		{[]string{"g", "widget", "x"}, "widget"},
		{[]string{"generate", "Component", "x"}, "Component"},
		{[]string{"g", "", "x"}, "<none>"},
	}
	for _, tt := range tests {
		_, err := Parse(ModeDirect, tt.args, reg)
		var ue *UnknownElementError
		require.True(t, errors.As(err, &ue), "args %q: want *UnknownElementError, got %v", tt.args, err)
		assert.Equal(t, tt.value, ue.Value())
	}
}

func TestParseMissingName(t *testing.T) {
	reg := defaultRegistry(t)

	for _, args := range [][]string{
		{"generate", "component"},
		{"g", "c", ""},
		{"g", "conn", "", "--with-test"},
	} {
		_, err := Parse(ModeDirect, args, reg)
		var me *MissingNameError
		require.True(t, errors.As(err, &me), "args %q: want *MissingNameError, got %v", args, err)
	}
}

func TestParseInvalidOption(t *testing.T) {
	reg := defaultRegistry(t)

	_, err := Parse(ModeDirect, []string{"generate", "component", "myName", "--bogus-flag"}, reg)
	var oe *InvalidOptionError
	require.True(t, errors.As(err, &oe), "want *InvalidOptionError, got %v", err)
	assert.Equal(t, "--bogus-flag", oe.Option)
	assert.Equal(t, []string{"--with-test", "--no-test"}, oe.Valid)
	assert.Equal(t, "Available options: --with-test, --no-test", oe.Guidance())
}

func TestParseFirstInvalidOptionReported(t *testing.T) {
	reg := defaultRegistry(t)

	_, err := Parse(ModeDirect, []string{"g", "c", "x", "--with-test", "--first", "--second"}, reg)
	var oe *InvalidOptionError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "--first", oe.Option)
}

func TestParseOptionsAreLiteralStrings(t *testing.T) {
	reg := defaultRegistry(t)

	// Index-like and near-miss tokens must not pass the allow-list.
	for _, opt := range []string{"0", "1", "--with-tests", "--no-test=true", "-with-test", "with-test"} {
		_, err := Parse(ModeDirect, []string{"g", "c", "x", opt}, reg)
		var oe *InvalidOptionError
		assert.True(t, errors.As(err, &oe), "option %q should be rejected", opt)
	}
}

func TestParseGenerate(t *testing.T) {
	reg := defaultRegistry(t)
	component, _ := reg.Lookup("component")

	inv, err := Parse(ModeDirect, []string{"generate", "component", "myName"}, reg)
	require.NoError(t, err)
	assert.Equal(t, ActionGenerate, inv.Action)
	require.NotNil(t, inv.Request)
	assert.Equal(t, component, inv.Request.Element)
	assert.Equal(t, "myName", inv.Request.Name)
	assert.Empty(t, inv.Request.Options)
	assert.True(t, inv.Request.WithTest)
}

func TestParseWithTestResolution(t *testing.T) {
	reg := defaultRegistry(t)

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"component default", []string{"g", "c", "x"}, true},
		{"service default", []string{"g", "s", "x"}, false},
		{"service forced on", []string{"g", "service", "x", "--with-test"}, true},
		{"component forced off", []string{"g", "component", "x", "--no-test"}, false},
		{"last flag wins on", []string{"g", "s", "x", "--no-test", "--with-test"}, true},
		{"last flag wins off", []string{"g", "c", "x", "--with-test", "--no-test"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := Parse(ModeDirect, tt.args, reg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, inv.Request.WithTest)
		})
	}
}

func TestRequestConflictingOptions(t *testing.T) {
	reg := defaultRegistry(t)

	inv, err := Parse(ModeDirect, []string{"g", "p", "x", "--with-test", "--no-test"}, reg)
	require.NoError(t, err)
	assert.True(t, inv.Request.HasConflictingOptions())

	inv, err = Parse(ModeDirect, []string{"g", "p", "x", "--with-test", "--with-test"}, reg)
	require.NoError(t, err)
	assert.False(t, inv.Request.HasConflictingOptions())
}

func TestParseScriptMode(t *testing.T) {
	reg := defaultRegistry(t)

	inv, err := Parse(ModeScript, []string{"conn", "billing", "--no-test"}, reg)
	require.NoError(t, err)
	assert.Equal(t, "connector", inv.Request.Element.Name)
	assert.Equal(t, "billing", inv.Request.Name)
	assert.False(t, inv.Request.WithTest)

	inv, err = Parse(ModeScript, nil, reg)
	require.NoError(t, err)
	assert.Equal(t, ActionHelp, inv.Action)
	assert.Nil(t, inv.Request)

	// Direct mode still requires a command.
	_, err = Parse(ModeDirect, nil, reg)
	var usage *UsageError
	require.True(t, errors.As(err, &usage))

	// The command word is not special in script mode.
	_, err = Parse(ModeScript, []string{"generate", "component", "x"}, reg)
	var ue *UnknownElementError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "generate", ue.Element)
}

func TestParseDoesNotAliasArgs(t *testing.T) {
	reg := defaultRegistry(t)

	args := []string{"g", "c", "x", "--with-test"}
	inv, err := Parse(ModeDirect, args, reg)
	require.NoError(t, err)

	args[3] = "--no-test"
	assert.Equal(t, []string{"--with-test"}, inv.Request.Options)
}

func TestIsValidOption(t *testing.T) {
	assert.True(t, IsValidOption("--with-test"))
	assert.True(t, IsValidOption("--no-test"))
	assert.False(t, IsValidOption(""))
	assert.False(t, IsValidOption("--help"))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "help", ActionHelp.String())
	assert.Equal(t, "generate", ActionGenerate.String())
	assert.Equal(t, "unknown", Action(42).String())
}
