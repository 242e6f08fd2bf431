// Package trace serializes per-call checksum records to a writer for
// offline fault analysis. Records are single logfmt-style text lines,
// optionally compressed, and can be rate limited so tracing never
// becomes the bottleneck of the checksum path.
package trace
