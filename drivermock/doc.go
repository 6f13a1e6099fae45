/*
Package drivermock provides a friendly pretend database for driver calls.

It is designed for binding development and tests where you want to validate
exactly what query text a component is sending to the database capability
— without needing a real server running.

Why use drivermock?

  - Inspect queries: plug in a QueryValidator to assert the built SQL text.
  - Script results: return a canned grid of text cells, nils included.
  - Simulate failures: fail session negotiation or query execution with a
    custom error or the package defaults.
  - Audit lifecycles: every query is recorded, and session / result close
    calls are counted so release-exactly-once contracts can be asserted.

Behavior

  - If FailConnect is true, Connect returns ConnectError when set and
    ErrConnectFailed otherwise.
  - If FailQuery is true, Query returns QueryError when set and a non-fatal
    StatusError otherwise.
  - Otherwise Query runs QueryValidator when provided, records the query,
    and materializes Result (an empty result when Result is nil).

Use Text to build non-null cells; a nil cell is a database NULL.
*/
package drivermock
