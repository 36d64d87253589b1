// Package config loads widget layouts for the input pipeline.
//
// A layout is the ordered list of widget definitions (id and rectangle) the
// pipeline is built from. File order is registration order, which is the
// priority order widgets see events in. Layouts load from TOML or JSON and
// can be saved back to JSON; a Watcher reloads the layout file on change so
// widget geometry can be updated between input cycles.
//
// The pipeline core leaves id uniqueness to the registrant; this package is
// the registrant, so duplicate ids are rejected here at load time.
package config
