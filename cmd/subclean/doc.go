// Package main hosts the subclean CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into workflow runs,
// processor listings, history maintenance and configuration scaffolding. It
// centralizes configuration resolution and logger setup so subcommands can
// focus on flags and output.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it here through a dedicated command or flag.
package main
