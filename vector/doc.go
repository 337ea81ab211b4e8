/*
Package vector provides a contiguous dynamic array with explicit capacity
management, and a stack adapter on top of it.

A Vector keeps its elements in one backing array. Capacity is only ever changed
by the vector itself: Reserve reallocates to exactly the requested capacity,
while appending operations grow geometrically. Positions are plain indices;
operations which reallocate invalidate slices previously obtained by Slice.

Vectors are not safe for concurrent use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package vector

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ordered'.
func tracer() tracing.Trace {
	return tracing.Select("ordered")
}
