//go:build !unix

package main

import "os"

// Best-effort fallback for non-Unix platforms. Unlike Dup2 on Unix this does
// not capture runtime-level stderr output such as panic traces, but it keeps
// builds working.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
