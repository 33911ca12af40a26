// Package core holds the connection runtime shared by the VTEX resource
// services: configuration, credentials, transport contracts, error
// envelopes and observability. It does not depend on provider packages.
package core
