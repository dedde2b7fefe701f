// Package frontend holds the options of one frontend invocation and the
// queries built on top of action classification: which configured output
// paths the requested action ignores, which paths it writes, the base name
// for co-located artifacts, and the module name it will use.
package frontend
