package compiler

// SourceGraph is the resolved dependency graph's file set. This core only
// queries membership; graph construction belongs to the toolchain.
type SourceGraph struct {
	files map[string]struct{}
}

// NewSourceGraph builds a graph fact from the toolchain's member file list.
// Paths are expected to be absolute.
func NewSourceGraph(files []string) *SourceGraph {
	set := make(map[string]struct{}, len(files))
	for _, f := range files {
		set[f] = struct{}{}
	}
	return &SourceGraph{files: set}
}

// Contains reports whether path is a member file of the resolved graph.
func (g *SourceGraph) Contains(path string) bool {
	_, ok := g.files[path]
	return ok
}

// Len returns the number of member files.
func (g *SourceGraph) Len() int {
	return len(g.files)
}
