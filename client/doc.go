// Package client implements the authenticated request pipeline used by every
// policy administration API call.
//
// Send resolves the target URL, attaches the session's Authorization header,
// dispatches the request under a timeout and normalizes any outcome (including
// transport failures) into an Envelope. Errors never cross the boundary: callers
// branch on Envelope.Success only.
//
// When the API answers 401 Unauthorized and a credential is stored, the pipeline
// probes the alternative Authorization header formats (see auth.Fallback) and
// remembers the first one the API accepts.
//
// Example:
//
//	cli := client.New(client.WithBaseURL("https://insure.example.com/api"))
//	if res := cli.Login(ctx, "admin", "secret"); !res.Success {
//		log.Fatal(res.Message)
//	}
//	branches := client.Send[[]Branch](ctx, cli, client.NewRequest(http.MethodGet, "/branches/"))
package client
