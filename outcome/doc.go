/*
Package outcome provides the two-variant success/failure container used as
the return convention for fallible binding operations.

An Outcome is either a Success carrying a value or a Failure carrying a
human-readable diagnostic string. There is no third state, and a fresh
Outcome is constructed for every fallible call.
*/
package outcome
