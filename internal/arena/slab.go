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

package arena

// Slab is a bump allocator for contiguous runs of T.
//
// Every slice returned by a Slab has its capacity clipped to its length, so
// appending to it reallocates instead of scribbling over a neighbor. Memory
// handed out is never reused.
//
// A zero Slab[T] is empty and ready to use.
type Slab[T any] struct {
	chunks [][]T
	len    int
}

// Alloc allocates n zeroed, contiguous values.
//
// Returns nil if n is zero.
func (s *Slab[T]) Alloc(n int) []T {
	if n < 0 {
		panic("layoutfmt/arena: negative slab allocation")
	}
	if n == 0 {
		return nil
	}

	var last *[]T
	if len(s.chunks) > 0 {
		last = &s.chunks[len(s.chunks)-1]
	}
	if last == nil || cap(*last)-len(*last) < n {
		size := minLen
		if last != nil {
			size = 2 * cap(*last)
		}
		// Oversized requests get a chunk of their own size; the doubling
		// resumes from there.
		s.chunks = append(s.chunks, make([]T, 0, max(size, n)))
		last = &s.chunks[len(s.chunks)-1]
	}

	start := len(*last)
	*last = (*last)[:start+n]
	s.len += n
	return (*last)[start : start+n : start+n]
}

// Copy allocates a copy of values.
func (s *Slab[T]) Copy(values ...T) []T {
	out := s.Alloc(len(values))
	copy(out, values)
	return out
}

// Len returns the total number of values allocated so far.
func (s *Slab[T]) Len() int {
	return s.len
}
