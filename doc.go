/*
Package slogtune adjusts the logging verbosity of specific parts of a running
or starting program via command-line style overrides, without touching any
configuration files. Dotted namespaces (module or module+function) are resolved
against the live program structure, per-namespace log-level overrides are
applied to a hierarchical registry consumed by a slog.Handler, and an override
may optionally be restricted to a single function name within a namespace.

Compact bracket notation like "a.[b,c.[d,e]]" expands to "a.b a.c.d a.c.e".

Please see https://github.com/apperia-de/slogtune for more details.
*/
package slogtune
