// Package store defines the session store that keeps the authenticated user's
// credential between API calls.
//
// A store is a tiny key/value capability over three keys: the bearer token, the
// raw token (prefix stripped) and the remembered authorization header format.
// It ships with an in-memory implementation that is sufficient for most CLI or
// unit-test scenarios, plus file (afs), bbolt and redis backends for sessions
// that must survive process restarts or be shared between hosts.
package store
