package compiler

import (
	"encoding/hex"
	"strings"
)

// DeployedSize returns the on-chain byte size of a contract's deployed
// bytecode. The second return is false when the artifact has no deployed
// bytecode at all (e.g. interfaces and abstract contracts).
//
// For unlinked bytecode the size is derived from the hex character count:
// library placeholders take up 40 characters, `__$<library hash>$__`, which
// is exactly a 20-byte address in hex, so no placeholder accounting is
// needed.
func DeployedSize(a *Artifact) (int, bool) {
	if !a.DeployedBytecode.IsPresent() {
		return 0, false
	}
	object := strings.TrimPrefix(a.DeployedBytecode.Object, "0x")
	if raw, err := hex.DecodeString(object); err == nil {
		return len(raw), true
	}
	// unlinked: hex text with placeholders
	return len(object) / 2, true
}
