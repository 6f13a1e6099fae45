/*
Package pgxdriver implements the database client capability directly over
the PostgreSQL wire protocol using pgx's low-level pgconn client.

Connection settings become a libpq-style keyword/value string; settings
left empty are omitted so pgconn's own defaults (environment variables,
service files) apply, matching libpq behavior. Query results are
materialized in full before they are handed back, and PostgreSQL error
severity decides the failure class: FATAL and PANIC end the session,
everything else is non-fatal, and protocol-level damage is malformed.
*/
package pgxdriver
