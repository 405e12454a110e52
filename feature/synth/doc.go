// Package synth generates plausible record pairs for newly allocated
// identifiers.
//
// Each pair shares identifier, name and email verbatim; divergence on the
// shared fields would surface as an integrity finding on the next run, so
// the generator copies rather than regenerates them.
package synth
