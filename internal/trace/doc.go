// Package trace records where the formatter spends its time.
//
// A run opens a driver span, every file opens a file span under it and every
// pipeline pass opens a pass span under its file. The level decides how deep
// the stream goes:
//
//	off     nothing
//	phase   run and files
//	detail  passes as well
//	debug   everything
//
// Tracers travel in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, trace.ParentFrom(ctx))
//	defer span.End("")
//
// Events are written as text or as NDJSON, one event per line.
package trace
