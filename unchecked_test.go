//go:build !nonmax_debug

package nonmax

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestNewUncheckedTrusts(t *testing.T) {
	tt := assert.WrapTB(t)

	// Without nonmax_debug the sentinel is stored as-is; callers own the
	// invariant.
	n := NewUnchecked(Sentinel[uint16]())
	tt.MustEqual(Sentinel[uint16](), n.Get())
}
