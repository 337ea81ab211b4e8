/*
Package ordered offers ordered associative containers: an ordered map and an
ordered set, both backed by the red-black tree engine of package rbtree.

Map and Set

Both containers keep their elements sorted by key, according to a strict weak
order supplied by the client. Keys are unique: inserting a key which is already
present leaves the container unchanged and reports the existing element.
Lookup, insertion and removal take O(log n); the first and the last element are
reachable in O(1).

Containers hand out bidirectional iterators which stay valid until their
element is erased:

	m := ordered.NewOrderedMap[string, int]()
	m.Insert("b", 2)
	m.Insert("a", 1)
	for it := m.Begin(); !it.Equal(m.End()); it = it.Next() {
	    fmt.Println(it.Value().Key, it.Value().Value)
	}

For idiomatic iteration, All returns a Go range function.

Map and Set are not safe for concurrent use; clients have to provide external
synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordered

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// OrderedError is an error type for the ordered module
type OrderedError string

func (e OrderedError) Error() string {
	return string(e)
}

// ErrKeyNotFound is flagged whenever a checked lookup does not find a key.
const ErrKeyNotFound = OrderedError("key not found")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = OrderedError("illegal arguments")
