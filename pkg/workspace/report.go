package workspace

import (
	"fmt"
	"io"
)

// WriteUnusedReport writes the unused-project section:
//
//	[unneeded]
//	* util/filedescriptor
func WriteUnusedReport(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "[unneeded]")
	for _, p := range r.Unused() {
		fmt.Fprintf(w, "* %s\n", p.Dir)
	}
}

// WriteSingleConsumerReport writes the single-consumer section, each line
// naming the project and its sole dependent:
//
//	[needed by only 1]
//	[1] termwiz [term]
func WriteSingleConsumerReport(w io.Writer, r *Registry) {
	fmt.Fprintln(w, "[needed by only 1]")
	for _, c := range r.SingleConsumers() {
		fmt.Fprintf(w, "[1] %s [%s]\n", c.Project.Dir, c.Dependent.Dir)
	}
}

// WriteReport writes the full audit: unused projects, single-consumer
// projects, and, when root is non-nil, the depth-first dependency tree.
// Sections appear in that fixed order.
func WriteReport(w io.Writer, r *Registry, root *Project) {
	WriteUnusedReport(w, r)
	WriteSingleConsumerReport(w, r)
	if root != nil {
		r.WriteTree(w, root)
	}
}
