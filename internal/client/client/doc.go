// Package client talks to the family feed server over gRPC and adapts it
// to the feedapi.Collection interface the stores consume.
package client
