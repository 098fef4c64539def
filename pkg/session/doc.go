/*
Package session implements wizard session management and persistence orchestration.

It serializes concurrent events for one session behind a per-session lock
(optionally backed by a distributed lock across replicas) and delegates
storage to a ports.SessionStore.
*/
package session
