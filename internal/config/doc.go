// Package config reads user-level settings from ~/.elemgen/config.yaml and
// ELEMGEN_* environment variables. Settings only tune the ambient behavior of
// the CLI (registry source, logging); nothing is ever written back.
package config
