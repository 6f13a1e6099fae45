/*
Package query assembles SQL text from a format string with `?` placeholders
and a sequence of positional string arguments.

Substitution is plain text splicing in left-to-right order: each `?`
consumes the next argument and is replaced by its raw text. No quoting or
escaping is performed, and no server-side parameter binding takes place;
the output is a complete query string ready to hand to the database
capability. Formats without placeholders are returned unchanged.

Parse splits a format once into its literal segments so the same template
can be rendered repeatedly without rescanning, and Cache keeps recently
parsed templates in a fixed-size LRU for callers that reuse formats.
*/
package query
