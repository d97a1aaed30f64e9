/*
Package pqueue implements ordered key/value pairs and a max-priority queue.

The queue is a binary max-heap over a growable slice. Clients may reserve
capacity up front, which is the common case for schedulers knowing the number
of work items in advance.

Pairs order by key only; the value is carried along. Keys may be any
cmp.Ordered type or a type with an explicit comparison function, such as
*big.Int.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package pqueue
