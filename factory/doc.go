// Package factory demonstrates the Factory pattern.
//
// Object construction is delegated to a creator abstraction (DocumentFactory) so
// callers can assemble documents without knowing which concrete product they get.
//
// The package is intentionally small:
//
//   - Document is the product capability set (header + body).
//   - Resume and Report are the concrete products.
//   - ResumeFactory and ReportFactory are the concrete creators.
//   - Generate is the client: it only ever sees a DocumentFactory.
//
// There is no inheritance hierarchy. Each concrete type satisfies its interface
// directly, and a plain constructor can be used as a creator via Func.
//
// A Registry maps document kinds to creators for callers that pick the product
// at runtime (the patterns CLI does this for its --kind flag).
//
// Import
//
//	"github.com/sghaida/docpatterns/factory"
package factory
