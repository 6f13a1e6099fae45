/*
Package driver defines the database client capability this binding depends
on but does not implement.

A Driver negotiates sessions, a Session executes query text, and a
ResultSet exposes the completed result as text cells with per-cell null
flags. Query failures carry the capability's three-way status
classification (malformed response, non-fatal server error, fatal server
error) as a structured StatusError whose Error text is the capability's
own diagnostic, verbatim.

Two implementations ship with the binding: pgxdriver speaks the PostgreSQL
wire protocol directly, and wapcdriver reaches a host-managed database
through waPC host calls. Tests inject the drivermock package instead.
*/
package driver
