package solc

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// LoadArtifacts reads every contract artifact under outDir into memory.
// Foundry lays artifacts out as out/<Source>.sol/<Contract>.json; the
// build-info directory holds compiler inputs, not artifacts, and is skipped.
func LoadArtifacts(outDir string) (map[string]*compiler.Artifact, error) {
	artifacts := make(map[string]*compiler.Artifact)

	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		return artifacts, nil
	}

	err := filepath.WalkDir(outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		var artifact compiler.Artifact
		if err := json.Unmarshal(data, &artifact); err != nil {
			// not a contract artifact (metadata caches etc), skip it
			return nil
		}
		if len(artifact.ABI) == 0 && !artifact.Bytecode.IsPresent() {
			return nil
		}

		name := strings.TrimSuffix(d.Name(), ".json")
		artifacts[name] = &artifact
		return nil
	})
	if err != nil {
		return nil, err
	}

	return artifacts, nil
}
