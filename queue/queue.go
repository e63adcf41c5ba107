// Package queue defines the polymorphic surface shared by every relaxation
// queue implementation in this module: the concurrent multiqueue, the
// single-mutex blocking queue, and the unlocked single-thread regular queue.
// sssp.Run is written against this interface so the worker loop is oblivious
// to which queue discipline backs it.
package queue

import "github.com/katalvlaran/msqueue/vertexrec"

// Queue is the minimal surface a relaxation queue must expose: insert-or-
// decrease-key a record, and extract the current global minimum.
type Queue interface {
	// Push inserts rec if it is not currently enqueued, or lowers its key if
	// it already is. newDist becomes rec's tentative distance only if it is
	// lower than the current one. Safe to call concurrently from any number
	// of goroutines.
	Push(rec *vertexrec.Record, newDist int32)

	// Pop removes and returns some record holding the (approximate, for
	// relaxed queues) global minimum distance, along with the distance it
	// held at the moment of removal, or (nil, 0) if the queue is empty. A
	// relaxed queue may also return (nil, 0) while it still holds records.
	// Safe to call concurrently from any number of goroutines.
	Pop() (*vertexrec.Record, int32)

	// PushSingleThreaded is Push without any synchronization, for callers
	// that are known to be the queue's only accessor (sssp.Run uses it to
	// seed the source vertex before any worker starts).
	PushSingleThreaded(rec *vertexrec.Record, newDist int32)

	// Empty reports whether the queue currently holds no elements. Used by
	// sssp.Run's termination detector to distinguish "this pop found
	// nothing" from "nothing will ever appear again".
	Empty() bool
}
