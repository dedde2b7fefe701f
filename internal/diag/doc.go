// Package diag defines the diagnostic model used by option validation.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings about a
//     frontend invocation (unused output paths, bad module names, broken
//     configuration).
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not format or print anything. Rendering lives in
// internal/diagfmt; the CLI decides exit codes.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Subject – the option or path the finding is about.
//   - Notes – optional secondary subjects for additional context.
//
// A configured path that the chosen action cannot use is a warning, never an
// error: the frontend simply does not write it.
package diag
