// Package config loads and validates YAML run descriptions for the
// clustering engines: one file selects the engine, the seed, the
// distance metric and every per-engine knob.
//
// What:
//
//   - Config mirrors both engines' option surfaces under yaml tags, with
//     validator constraints attached per field.
//   - Default seeds a Config from the engines' DefaultOptions; Parse
//     overlays a YAML payload on top, so files only state what they
//     change. Load is Parse over a file.
//   - DirectWalkOptions / AntGridOptions translate the validated Config
//     into the concrete Options, resolving the distance selector
//     (euclidean | manhattan | warp, optionally wrapped with
//     core.SkipMissing).
//
// Why:
//
//   - Engines validate their own Options, but a YAML surface fails
//     earlier and names the offending field: a typoed drop rule is
//     caught at parse time, not mid-run.
//   - Keeping defaults in the engines and overlaying on top means the
//     two layers cannot drift apart.
//
// Errors:
//
//   - ErrUnreadable: the file could not be read.
//   - ErrMalformed: the YAML payload did not parse.
//   - ErrInvalid: a parsed value violates its constraint tags.
//
// All three wrap core.ErrConfiguration.
package config
