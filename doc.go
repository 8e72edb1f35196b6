/*
Package expanse is a collection of small helpers on top of Go's slices and
on top of trees owned by clients.

Packages

The helpers are organized in sub-packages:

	seq       binary search, sorted insert/find and other helpers for slices
	treenav   ancestor paths, common ancestors and traversal of client trees
	html      a treenav navigator for golang.org/x/net/html documents
	stats     median and percentiles
	pick      uniform and weighted random choice

None of the helpers retains references to client data after a call returns,
and none of them holds global state. "Not found" conditions of searches are
reported as sentinel values (a complemented insertion point, or a zero value
together with a boolean), never as errors. Errors are reserved for requests
which cannot be served at all, like asking for the median of an empty slice.

Tracing

All packages trace to the schuko tracing key 'expanse'. Tests redirect
traces to the testing log by

	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

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
package expanse

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ExpanseError is an error type for the expanse module
type ExpanseError string

func (e ExpanseError) Error() string {
	return string(e)
}

// ErrEmptySequence is flagged whenever an operation needs at least one item
// and has been called for an empty slice.
const ErrEmptySequence = ExpanseError("empty sequence")

// ErrNoMatch is flagged whenever an operation must return a matching item
// and none of the items matches.
const ErrNoMatch = ExpanseError("no matching item")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ExpanseError("illegal arguments")
