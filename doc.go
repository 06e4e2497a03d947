// Package docpatterns explains two object-oriented design patterns in Go.
//
// The repository is a small, runnable companion to the README:
//
//   - factory: the Factory pattern. A creator interface hands out documents so
//     the client never names a concrete product.
//   - mixin: the Mixin pattern, expressed as composition. Small capability
//     structs are embedded next to a base document instead of inherited.
//   - guide: the prose. Definitions, tradeoffs and the comparison table.
//
// Both samples are single-pass and synchronous. They do not share state.
//
// Package docpatterns See subpackages:
//   - factory, mixin, guide: the library packages
//   - cmd/patterns: CLI running the demos (factory, mixin, compare, explain)
//   - examples/*: the two demos as minimal main programs
package docpatterns
