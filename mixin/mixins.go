package mixin

// SourceMixin adds a source attribution to whatever embeds it.
type SourceMixin struct {
	source *string
}

// AddSource stores source, replacing any earlier value. No validation is done.
func (m *SourceMixin) AddSource(source string) {
	m.source = &source
}

// Source returns the stored source and whether AddSource was ever called.
func (m *SourceMixin) Source() (string, bool) {
	if m.source == nil {
		return "", false
	}
	return *m.source, true
}

// CertificatesMixin adds an ordered list of certificate names.
type CertificatesMixin struct {
	certificates []string
	set          bool
}

// AddCertificates stores a copy of certs, replacing any earlier list.
// An empty or nil list still counts as set.
func (m *CertificatesMixin) AddCertificates(certs []string) {
	m.certificates = append([]string(nil), certs...)
	m.set = true
}

// Certificates returns a copy of the stored list and whether AddCertificates
// was ever called.
func (m *CertificatesMixin) Certificates() ([]string, bool) {
	if !m.set {
		return nil, false
	}
	return append([]string(nil), m.certificates...), true
}
