/*
Package snarkmr offers map-reduce containers for building large proving keys.

Proving and verification keys of pairing-based proof systems consist of huge
vectors of group elements, most of which are the identity. Computing them
is dominated by millions of group operations, which is why the work is split
into blocks and distributed across goroutines, processes or machines.

Packages

	space     partition of an N-dimensional index grid into blocks
	block     block-local slice of a one-dimensional vector
	sparse    ascending, identity-omitting vector of group elements
	pqueue    ordered pairs and a reservable max-heap for bucket scheduling
	record    line-oriented text records to move all of the above
	mapreduce reference driver running blocks concurrently
	kcquery   knowledge-commitment queries built block by block

The containers do not know anything about elliptic curves. They operate on an
opaque element type T, described to them by an Algebra[T]: a group with
identity, addition and equality, plus a text codec. Package curve/bn256g
provides algebras for BN256 groups and knowledge commitments, package
ringelem one for polynomial rings.

Blocks of a partition never overlap. Workers may therefore fill one block
vector or one sparse vector each without any synchronization; only the final
reduce step (Accumulate or Concat) combines results, in a single goroutine.

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
package snarkmr
