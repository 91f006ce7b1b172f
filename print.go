package talon

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented listing of the tree's digests to w,
// one node per line, children one level deeper than their parent.
//
// This is a diagnostic aid only;
// the output format is not stable and has no effect on tree semantics.
func Fprint(w io.Writer, t *Tree) error {
	return fprintNode(w, t, int32(len(t.nodes)-1), 0)
}

func fprintNode(w io.Writer, t *Tree, idx int32, depth int) error {
	_, err := fmt.Fprintf(
		w, "%s|-- %s\n",
		strings.Repeat("    ", depth),
		hex.EncodeToString(t.nodes[idx].hash),
	)
	if err != nil {
		return err
	}

	n := t.nodes[idx]
	if n.left == noNode {
		return nil
	}

	if err := fprintNode(w, t, n.left, depth+1); err != nil {
		return err
	}
	return fprintNode(w, t, n.right, depth+1)
}
