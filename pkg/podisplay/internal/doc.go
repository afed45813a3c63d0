// Package internal contains the shell's core infrastructure: logging and the
// UI event loop every router and controller call runs on.
// Types and functions in this package are not part of the public API.
package internal
