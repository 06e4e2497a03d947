package factory

// Document is the product capability set.
//
// A concrete product must provide both operations; the compiler enforces that
// when the product is returned from a DocumentFactory.
type Document interface {
	CreateHeader() string
	CreateBody() string
}

// DocumentFactory is the creator capability set.
type DocumentFactory interface {
	CreateDocument() Document
}

// Resume is a concrete product.
type Resume struct{}

// CreateHeader implements Document.
func (Resume) CreateHeader() string { return "Resume Header" }

// CreateBody implements Document.
func (Resume) CreateBody() string { return "Resume Body" }

// Report is a concrete product.
type Report struct{}

// CreateHeader implements Document.
func (Report) CreateHeader() string { return "Report Header" }

// CreateBody implements Document.
func (Report) CreateBody() string { return "Report Body" }

// ResumeFactory creates a new *Resume on every call.
type ResumeFactory struct{}

// CreateDocument implements DocumentFactory.
func (ResumeFactory) CreateDocument() Document { return &Resume{} }

// ReportFactory creates a new *Report on every call.
type ReportFactory struct{}

// CreateDocument implements DocumentFactory.
func (ReportFactory) CreateDocument() Document { return &Report{} }

// Func adapts a plain constructor into a DocumentFactory.
//
//	f := factory.Func(func() factory.Document { return &factory.Report{} })
type Func func() Document

// CreateDocument implements DocumentFactory.
func (fn Func) CreateDocument() Document { return fn() }

var (
	_ Document        = (*Resume)(nil)
	_ Document        = (*Report)(nil)
	_ DocumentFactory = ResumeFactory{}
	_ DocumentFactory = ReportFactory{}
	_ DocumentFactory = Func(nil)
)

// Generate is the client side of the pattern.
//
// It asks f for a document and joins its header and body with a line break.
// Generate never inspects the concrete product type.
func Generate(f DocumentFactory) string {
	return assemble(f.CreateDocument())
}

func assemble(doc Document) string {
	return doc.CreateHeader() + "\n" + doc.CreateBody()
}
