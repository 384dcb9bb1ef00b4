// Package json is the JSON codec used across the module.
//
// On linux, darwin and windows for amd64 and arm64 it is backed by
// [sonic] in its standard-compatible configuration. Everywhere else it
// falls back to encoding/json with the same surface.
package json
