// Package action classifies frontend actions.
//
// Every action the frontend can run is a Kind. For each Kind the package
// answers a fixed set of questions used by output-path management and option
// validation:
//
//   - does the action need a proper module name;
//   - does it run immediately, without file output;
//   - which suffix its principal output carries;
//   - which sidecars it can emit (dependencies, header, loaded module trace,
//     serialized module and its doc file);
//   - whether it produces output at all, and whether that output is text.
//
// All answers come from one table in table.go. Predicates are thin lookups
// over it, so adding a Kind means adding exactly one row. A Kind without a
// row panics at package init; a Kind outside the enumeration panics at the
// call site.
package action
