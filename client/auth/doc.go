// Package auth models the session credential and the authorization header
// formats the API may accept.
//
// A Credential is stored at login in a store.Store; the request pipeline loads it
// before every call and renders the Authorization header with the remembered
// Format. When the API rejects the header with 401 Unauthorized, Fallback yields
// the alternative formats to probe, in a fixed, auditable order.
package auth
