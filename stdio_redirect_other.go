//go:build !unix

package main

import (
	"fmt"
	"os"

	"github.com/bradley-health/icongen/internal/export"
)

// Without dup2 only writes made through os.Stdout and os.Stderr move to the
// log; runtime panics still reach the console.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, export.FilePerm)
	if err != nil {
		return fmt.Errorf("open stdio log: %w", err)
	}
	os.Stdout, os.Stderr = f, f
	return nil
}
