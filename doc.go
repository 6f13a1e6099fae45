/*
Package postgres is a minimal client binding over a relational database
capability: connection open, placeholder-substitution queries, and
row-by-row iteration over completed results.

Open negotiates a session through a driver.Driver (the pgx wire-protocol
driver by default, a waPC host capability when running as a WebAssembly
guest) and Conn.Query assembles query text from a `?` format and positional
string arguments before handing it to the capability. All values travel as
text; a NULL cell is rendered as the literal "(null)" during iteration.

The two fallible operations, Open and Conn.Query, return a two-variant
outcome.Outcome carrying either the value or the capability's diagnostic
text, never both. Sessions are released exactly once when a Conn is
collected; results are released by Result.Close or, failing that, when the
Result is collected. Both release paths share one idempotent close.

A Conn and its Results assume a single logical thread of control: no
operation here locks, blocks on anything but the capability itself, or
supports cancellation.
*/
package postgres
