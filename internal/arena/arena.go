// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides allocators whose values never move once allocated.
//
// Everything allocated from an arena lives exactly as long as the arena
// itself. Nothing is freed individually; dropping the arena releases all of
// it at once. This matches the lifetime of a single formatting pass, where a
// whole layout tree is built, rendered once, and then discarded.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

// minLenShift is the log2 of the size of the smallest slice in an [Arena].
const (
	minLenShift = 4
	minLen      = 1 << minLenShift
)

// Pointer is a compressed arena pointer.
//
// The value of a pointer is one plus the number of elements allocated before
// it, so the zero value is nil. It cannot be dereferenced directly; see
// [Pointer.In].
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In looks up this pointer in the given arena.
//
// arena must be the arena that allocated this pointer, otherwise this will
// either return an arbitrary pointer or panic. If p is nil, this panics.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.Deref(p)
}

// Arena is a typed arena. Internally, it is a slice of T that guarantees the
// Ts will never be moved, so a *T obtained from it stays valid for as long as
// the arena does.
//
// It does this by maintaining a table of logarithmically-growing slices that
// mimic the resizing behavior of an ordinary slice. Lookup remains O(1), at
// the cost of two pointer loads instead of one.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(table[0]) == minLen.
	// 2. cap(table[n]) == 2*cap(table[n-1]).
	// 3. cap(table[n]) == len(table[n]) for n < len(table)-1.
	//
	// These invariants are needed for lookup to be O(1).
	table [][]T
}

// New allocates a new value on the arena.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, minLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Alloc is like [Arena.New], but returns the stable address of the new value
// instead of a compressed pointer.
func (a *Arena[T]) Alloc(value T) *T {
	return a.Deref(a.New(value))
}

// Deref dereferences a pointer allocated by this arena.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		panic("layoutfmt/arena: dereferenced nil pointer")
	}
	slice, idx := a.coordinates(int(p) - 1)
	return &a.table[slice][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}

	// Only the last slice will be not-fully-filled.
	return a.lenOfFirstNSlices(len(a.table)-1) + len(a.table[len(a.table)-1])
}

// Values returns an iterator over every value in allocation order, along with
// its pointer.
func (a *Arena[T]) Values() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		n := 0
		for _, slice := range a.table {
			for i := range slice {
				n++
				if !yield(Pointer[T](n), &slice[i]) {
					return
				}
			}
		}
	}
}

// String implements [fmt.Stringer].
//
// Boundaries between the internal slices are shown with a |.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, slice := range a.table {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, v := range slice {
			if j != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// lenOfNthSlice returns the length of the nth slice, even if it isn't
// allocated yet.
func (*Arena[T]) lenOfNthSlice(n int) int {
	return minLen << n
}

// lenOfFirstNSlices returns the length of the first n slices.
func (a *Arena[T]) lenOfFirstNSlices(n int) int {
	// 2^m + 2^(m+1) + ... + 2^(n-1) = 2^n - 2^m
	return max(0, a.lenOfNthSlice(n)-a.lenOfNthSlice(0))
}

// coordinates calculates the coordinates of the given index in table. It
// also performs a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("layoutfmt/arena: pointer out of range: %#x", idx+1))
	}

	// Slice k starts at (2^k - 1) << minLenShift. Adding minLen to idx turns
	// those boundaries into powers of two, so the index of the high bit picks
	// out the slice.
	slice := bits.UintSize - bits.LeadingZeros(uint(idx)+minLen)
	slice -= minLenShift + 1

	return slice, idx - a.lenOfFirstNSlices(slice)
}
