// Package cli implements the policyadmin command line tool.
//
// The tool keeps one session in the configured store (memory, file, bolt or redis), so a
// persistent store is required for the session to outlive a single invocation:
//
//	policyadmin -s file login --username admin --password secret
//	policyadmin -s file dashboard
//	policyadmin -s file get /loans/
//
// Login credentials may also come from a scy secret resource (--secret, --key).
package cli
