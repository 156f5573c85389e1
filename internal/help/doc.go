// Package help renders the usage text: command table, element table and
// option table. Rendering has no side effects beyond the writer it is given
// and is byte-for-byte deterministic for a given registry and layout.
package help
