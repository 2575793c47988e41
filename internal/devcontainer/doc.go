// Package devcontainer converts a resolved configuration into the
// external devcontainer.json schema and validates previously generated
// files.
//
// Serialization is strictly deterministic: the same resolved config
// always yields byte-identical JSON. Field order is fixed by the output
// struct declaration, map keys are sorted by encoding/json, indentation
// is two spaces, and the file ends with a trailing newline. Drift
// detection relies on this — the check operation compares raw bytes,
// not parsed structures.
package devcontainer
