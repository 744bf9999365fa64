//
// Copyright (c) 2024-2026 Markku Rossi
//
// All rights reserved.
//

package blif

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reIndexed = regexp.MustCompilePOSIX(`^(.*)\[([0-9]+)\]$`)
	rePacked  = regexp.MustCompilePOSIX(`^(.*)_PACKED_([0-9]+)$`)
)

// BaseNameAndWidth decomposes a wire name of the form `base[idx]`
// into (base, idx). A bare name decomposes to (name, 0).
func BaseNameAndWidth(name string) (string, int) {
	m := reIndexed.FindStringSubmatch(name)
	if m == nil {
		return name, 0
	}
	idx, err := strconv.Atoi(m[2])
	if err != nil {
		return name, 0
	}
	return m[1], idx
}

// SplitWireID expands a wire name carrying a `_PACKED_<width>` marker
// into its width individually numbered bit names. The expansion is
// applied before `[idx]` decomposition so that a packed bus that is
// itself one element of an outer array lands on the correct absolute
// bit positions: `foobar_PACKED_4[3]` becomes foobar[12]..foobar[15].
// A name without the marker is returned unchanged as a single-element
// list.
func SplitWireID(name string) []string {
	base, idx := BaseNameAndWidth(name)
	m := rePacked.FindStringSubmatch(base)
	if m == nil {
		return []string{name}
	}
	width, err := strconv.Atoi(m[2])
	if err != nil || width <= 0 {
		return []string{name}
	}
	names := make([]string, width)
	for i := 0; i < width; i++ {
		names[i] = fmt.Sprintf("%s[%d]", m[1], width*idx+i)
	}
	return names
}

// expandIndexed expands a wire name annotated with a packed width
// into its width bit names, using the same absolute-position rule as
// SplitWireID.
func expandIndexed(name string, width int) []string {
	base, idx := BaseNameAndWidth(name)
	names := make([]string, width)
	for i := 0; i < width; i++ {
		names[i] = fmt.Sprintf("%s[%d]", base, width*idx+i)
	}
	return names
}
