// Package registry provides the central catalog for the sample system.
//
// The Registry maps an integer order key to a named factory that constructs
// one runnable demonstration. Sample packages register themselves against a
// Registry instance handed to them during application startup; the CLI then
// queries the same instance to enumerate samples in key order and to
// construct the one the user selected.
//
// There is no package-level registry and no init-time registration. A
// Registry is always created explicitly and passed to the modules that
// populate it, which keeps the full module list visible in one place and
// makes collisions between order keys a startup error instead of a silent
// overwrite.
package registry
