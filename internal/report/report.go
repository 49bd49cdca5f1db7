// SPDX-License-Identifier: MIT

// Package report renders scan results to the console and, best-effort, to a
// plain-text results file.
package report

import (
	"fmt"
	"io"

	"github.com/google/renameio/v2"
)

// Console prints the result set to w: a header line followed by one URL per
// line, or a single "none found" message when the set is empty.
func Console(w io.Writer, found []string) {
	if len(found) == 0 {
		fmt.Fprintln(w, "No backup files found.")
		return
	}
	fmt.Fprintln(w, "Possible backup files found:")
	for _, u := range found {
		fmt.Fprintln(w, u)
	}
}

// WriteFile writes the found URLs to path, one per line, newline-terminated,
// atomically replacing any existing file. Callers only invoke this with a
// non-empty result set; an empty scan must leave the file untouched.
func WriteFile(path string, found []string) error {
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending results file: %w", err)
	}
	defer func() {
		// renameio removes the temp file if it was never committed.
		_ = pending.Cleanup()
	}()

	for _, u := range found {
		if _, err := fmt.Fprintln(pending, u); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
	}

	// CloseAtomicallyReplace: fsync + rename (durable + atomic)
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace results file: %w", err)
	}
	return nil
}
