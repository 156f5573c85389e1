// Package element holds the registry of generatable element types
// (component, page, service, connector). The registry is authored as an
// embedded YAML document, validated against an embedded JSON Schema, and
// frozen once loaded. A replacement document can be loaded from disk; it
// goes through the same validation.
package element
