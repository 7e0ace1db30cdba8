// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: crossref-mailto, zenodo-api-token, dataverse-api-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/replication-scout/pkg/types"
)

// Well-known secret file names.
const (
	KeyCrossRefMailto    = "crossref-mailto"
	KeyZenodoAPIToken    = "zenodo-api-token"
	KeyDataverseAPIToken = "dataverse-api-token"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// Apply copies the well-known secrets into the pipeline configuration.
// Values already set in the config (for example from flags) win over the
// secrets directory.
func Apply(cfg *types.PipelineConfig, secrets map[string]string) {
	if cfg.Harvest.Mailto == "" {
		cfg.Harvest.Mailto = secrets[KeyCrossRefMailto]
	}
	if cfg.Resolver.ZenodoAPIToken == "" {
		cfg.Resolver.ZenodoAPIToken = secrets[KeyZenodoAPIToken]
	}
	if cfg.Resolver.DataverseAPIToken == "" {
		cfg.Resolver.DataverseAPIToken = secrets[KeyDataverseAPIToken]
	}
}
