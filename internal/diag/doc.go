// Package diag is the diagnostic model shared by the lexer, the driver and
// the renderers in internal/diagfmt.
//
// Producers report through a Reporter; the usual sink is a Bag wrapped in a
// BagReporter. A Diagnostic carries a Severity, a Code with a stable string
// form (LEX1002), a message, the primary span and optional notes. A file with
// any error diagnostic is never formatted.
package diag
