package scalar

import (
	"fmt"
	"io"
	"os"
)

// Dump prints the data and gradient of v and every node reachable from it
// to stdout. Debug only; the format carries no compatibility guarantee.
func (v *Value) Dump() {
	v.DumpTo(os.Stdout)
}

// DumpTo writes the dump to w. Shared nodes appear once per path.
func (v *Value) DumpTo(w io.Writer) {
	fmt.Fprintf(w, "data = %v, gradient = %v\n", v.data, v.grad)
	for _, operand := range v.operands {
		operand.DumpTo(w)
	}
}
