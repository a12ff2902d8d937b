// Package types holds the command metadata the help renderer consumes:
// commands, their positional args and their flags.
package types
