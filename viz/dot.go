package viz

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mcislab/mcis/core"
)

// timestampLayout prefixes saved diagram files so consecutive runs sort
// chronologically.
const timestampLayout = "2006-01-02-15:04:05"

// DOT renders g as a digraph description. Every directed edge carries its
// weight as the label; isolated nodes are listed explicitly so they are not
// lost.
func DOT(g *core.Graph) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		if n.NumChildren() == 0 && n.NumParents() == 0 {
			fmt.Fprintf(&b, "    %q;\n", id)
			continue
		}
		for _, child := range n.Children() {
			w, _ := n.ChildWeight(child)
			fmt.Fprintf(&b, "    %q -> %q [label=\"%d\"];\n", id, child, w)
		}
	}
	b.WriteString("}\n")

	return b.String()
}

// WriteDOT writes the DOT rendering of g to w.
func WriteDOT(w io.Writer, g *core.Graph) error {
	_, err := io.WriteString(w, DOT(g))

	return err
}

// SaveDiagram writes g to dir/<timestamp>_<name>.gv, creating dir when
// missing, and returns the written path.
func SaveDiagram(dir, name string, g *core.Graph) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("viz: SaveDiagram: %w", err)
	}
	path := filepath.Join(dir, time.Now().Format(timestampLayout)+"_"+name+".gv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("viz: SaveDiagram: %w", err)
	}
	defer f.Close()

	if err = WriteDOT(f, g); err != nil {
		return "", fmt.Errorf("viz: SaveDiagram: %w", err)
	}

	return path, nil
}
