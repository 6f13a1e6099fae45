/*
Package wapcdriver implements the database client capability over waPC
host calls, for binding code compiled to WebAssembly and run inside a
Tarmac-style host runtime.

The host owns the physical database connection and its credentials, so the
five positional connection settings are ignored here; Connect instead
probes the capability with a trivial query so an unreachable or
misconfigured host surfaces at open time. Queries travel as protobuf
SQLQuery payloads, responses come back as SQLQueryResponse with a status
code and JSON-encoded row data, and the status code maps onto the
capability's three failure classes.
*/
package wapcdriver
