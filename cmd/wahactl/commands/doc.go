// Package commands defines the wahactl command tree. Each subcommand maps to
// exactly one gateway call: list-style responses print as one line per item
// plus a count, anything else as an indented JSON dump.
package commands
