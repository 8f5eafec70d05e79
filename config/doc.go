// Package config holds the editor's tunable options and their JSON
// persistence. Loading is deliberately tolerant: missing keys keep their
// defaults, invalid values are replaced with defaults, and malformed JSON
// degrades to the stock option set rather than failing the caller.
package config
