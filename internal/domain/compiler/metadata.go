package compiler

// ContractMetadata is the externally-fetched description of a verified
// contract: its full source tree plus the settings needed to rebuild it in
// isolation.
type ContractMetadata struct {
	// ContractName is the name of the target contract within the tree.
	ContractName string
	// CompilerVersion as recorded by the explorer, e.g. "v0.8.19+commit.7dd6d404".
	CompilerVersion string
	// Sources maps source file paths to their contents.
	Sources map[string]string
	// Remappings declared by the contract's build settings.
	Remappings []Remapping
}
