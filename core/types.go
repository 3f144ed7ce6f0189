// SPDX-License-Identifier: MIT

// Package core: element constraint for the fixed-size containers.
package core

// Number is the set of element types a container may hold.
// The zero value of every member is 0, which is the default fill for
// slots the caller did not supply.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
