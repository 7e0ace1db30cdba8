//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Scan builds the CLI and runs a full economics scan with default years.
func Scan() error {
	mg.Deps(Build)
	if err := sh.RunV(filepath.Join(binDir, binName), "scan", "economics"); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}
