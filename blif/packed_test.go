//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package blif

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseNameAndWidth(t *testing.T) {
	base, idx := BaseNameAndWidth("random[7]")
	require.Equal(t, "random", base)
	require.Equal(t, 7, idx)

	base, idx = BaseNameAndWidth("random")
	require.Equal(t, "random", base)
	require.Equal(t, 0, idx)

	base, idx = BaseNameAndWidth("state[0]")
	require.Equal(t, "state", base)
	require.Equal(t, 0, idx)
}

func TestSplitWireID(t *testing.T) {
	require.Equal(t, []string{"foobar[0]", "foobar[1]"},
		SplitWireID("foobar_PACKED_2[0]"))

	require.Equal(t,
		[]string{"foobar[12]", "foobar[13]", "foobar[14]", "foobar[15]"},
		SplitWireID("foobar_PACKED_4[3]"))

	require.Equal(t, []string{"plain"}, SplitWireID("plain"))
	require.Equal(t, []string{"plain[4]"}, SplitWireID("plain[4]"))
}

func TestExpandIndexed(t *testing.T) {
	require.Equal(t, []string{"d[0]", "d[1]", "d[2]", "d[3]"},
		expandIndexed("d", 4))
	require.Equal(t, []string{"d[8]", "d[9]", "d[10]", "d[11]"},
		expandIndexed("d[2]", 4))
}
