package etherscan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/madrazzl3/solbuild/internal/domain/compiler"
)

// rawMetadata mirrors the explorer's getsourcecode result entry.
type rawMetadata struct {
	SourceCode      string `json:"SourceCode"`
	ContractName    string `json:"ContractName"`
	CompilerVersion string `json:"CompilerVersion"`
}

// standardJSONInput is the solc standard-json shape some explorers return in
// the SourceCode field, wrapped in an extra brace pair.
type standardJSONInput struct {
	Sources map[string]struct {
		Content string `json:"content"`
	} `json:"sources"`
	Settings struct {
		Remappings []string `json:"remappings"`
	} `json:"settings"`
}

// ParseMetadata decodes one explorer result entry into ContractMetadata.
// The SourceCode field comes in three shapes: a flat Solidity source, a JSON
// object of sources, or a double-braced standard-json input.
func ParseMetadata(data []byte) (*compiler.ContractMetadata, error) {
	var raw rawMetadata
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode contract metadata: %w", err)
	}
	if raw.ContractName == "" {
		return nil, fmt.Errorf("contract metadata has no contract name")
	}

	metadata := &compiler.ContractMetadata{
		ContractName:    raw.ContractName,
		CompilerVersion: raw.CompilerVersion,
	}

	source := strings.TrimSpace(raw.SourceCode)
	switch {
	case strings.HasPrefix(source, "{{"):
		// standard-json input, double-braced
		var input standardJSONInput
		if err := json.Unmarshal([]byte(source[1:len(source)-1]), &input); err != nil {
			return nil, fmt.Errorf("failed to decode standard-json source: %w", err)
		}
		metadata.Sources = make(map[string]string, len(input.Sources))
		for path, src := range input.Sources {
			metadata.Sources[path] = src.Content
		}
		for _, r := range input.Settings.Remappings {
			name, path, ok := strings.Cut(r, "=")
			if !ok {
				continue
			}
			metadata.Remappings = append(metadata.Remappings, compiler.Remapping{Name: name, Path: path})
		}
	case strings.HasPrefix(source, "{"):
		// plain map of path to content
		var sources map[string]struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal([]byte(source), &sources); err != nil {
			return nil, fmt.Errorf("failed to decode source map: %w", err)
		}
		metadata.Sources = make(map[string]string, len(sources))
		for path, src := range sources {
			metadata.Sources[path] = src.Content
		}
	default:
		// single flat source file
		metadata.Sources = map[string]string{
			raw.ContractName + ".sol": raw.SourceCode,
		}
	}

	return metadata, nil
}
