package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// ErrorEntry is one link of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// ErrorChain walks the chain of zerr errors. The first error that is not a
// zerr error ends the chain with its full message.
func ErrorChain(err error) []ErrorEntry {
	var entries []ErrorEntry

	for current := err; current != nil; {
		z, ok := current.(*zerr.Error)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error()})
			break
		}

		entries = append(entries, ErrorEntry{Message: z.Message(), Metadata: z.Metadata()})
		current = errors.Unwrap(current)
	}

	return entries
}

// Detail renders the metadata of every link of err, one "key: value" line
// each. The messages are left out since Error already joins them.
func Detail(err error) string {
	var lines []string

	for _, entry := range ErrorChain(err) {
		keys := make([]string, 0, len(entry.Metadata))
		for k := range entry.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", k, entry.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
