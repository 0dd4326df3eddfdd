// Package lineage exposes module-level metadata shared by the CLI and
// embedding applications.
package lineage

// Version is the module version reported by the CLI.
const Version = "0.2.0"
