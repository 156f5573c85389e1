// Package cli hosts the elemgen command on Cobra. Cobra's own flag parsing
// is switched off: the dispatch package classifies the raw arguments, and
// this package only wires configuration, logging and the element registry
// around it, then renders the outcome.
package cli
