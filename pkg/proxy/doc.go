// Package proxy forwards AI requests from the browser to the upstream
// provider, attaching the server-held API key. Bodies are relayed verbatim
// in both directions.
package proxy
