// Package app contains the core application logic for the sampler. It
// defines the App struct, its configuration, and the list/dispatch
// lifecycle, decoupled from the CLI entrypoint.
package app
