package element

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// SupportedVersions is the registry document versions this build understands.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

//go:embed elements.yaml
var defaultDocument []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

type document struct {
	Version  string    `yaml:"version"`
	Elements []Element `yaml:"elements"`
}

// Default returns the registry built from the embedded elements.yaml.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = parse(defaultDocument, "embedded elements.yaml")
	})
	return defaultRegistry, defaultErr
}

// Load reads a registry document from path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading element registry %s: %w", path, err)
	}
	return parse(data, path)
}

// Parse builds a registry from raw YAML.
func Parse(data []byte) (*Registry, error) {
	return parse(data, "element registry")
}

func parse(data []byte, source string) (*Registry, error) {
	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", source, err)
	}
	if len(issues) > 0 {
		return nil, &SchemaError{Source: source, Issues: issues}
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	reg, err := New(doc.Version, doc.Elements)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return reg, nil
}

// checkVersion strips a leading "v" and tests the version against SupportedVersions.
func checkVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing registry version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported versions: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("registry version %s is not supported (want %s)", version, SupportedVersions)
	}
	return nil
}
