// Package syncer reconciles the local record store with the remote record
// service.
//
// A round is: connectivity ping, pull since the checkpoint, push of every
// dirty note, checkpoint advance. Rounds are strictly sequential. The store
// lock is held only inside individual store calls, never across network I/O.
package syncer
