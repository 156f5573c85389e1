// Package dispatch turns raw command-line arguments into either a help
// request, a validated generation request, or a classified error. It does
// no I/O of its own apart from RenderError, so every decision can be tested
// without running a process.
package dispatch
