package mixin

import (
	"fmt"
	"io"
)

// Displayer is implemented by every document in this package.
type Displayer interface {
	Display(w io.Writer) error
}

// Document is the base data aggregate.
type Document struct {
	Title   string
	Content string
}

// Display writes the title, a "Content:" label and the content, one per line.
func (d *Document) Display(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\nContent:\n%s\n", d.Title, d.Content); err != nil {
		return fmt.Errorf("mixin: display document: %w", err)
	}
	return nil
}

// Report is a Document with an author and the source capability.
type Report struct {
	Document
	SourceMixin

	Author string
}

// NewReport returns a report without a source.
func NewReport(title, content, author string) *Report {
	return &Report{
		Document: Document{Title: title, Content: content},
		Author:   author,
	}
}

// Display writes the base document followed by the author line.
//
// It fails with a *MissingAttributeError once the base lines are written if
// AddSource was never called.
func (r *Report) Display(w io.Writer) error {
	if err := r.Document.Display(w); err != nil {
		return err
	}
	if _, ok := r.Source(); !ok {
		return &MissingAttributeError{Type: "Report", Attribute: "source"}
	}
	if _, err := fmt.Fprintf(w, "Author: %s\n", r.Author); err != nil {
		return fmt.Errorf("mixin: display report: %w", err)
	}
	return nil
}

// Resume is a Document with an applicant name and the certificates capability.
type Resume struct {
	Document
	CertificatesMixin

	ApplicantName string
}

// NewResume returns a resume without certificates.
func NewResume(title, content, applicantName string) *Resume {
	return &Resume{
		Document:      Document{Title: title, Content: content},
		ApplicantName: applicantName,
	}
}

// Display writes the base document followed by the applicant name line.
//
// It fails with a *MissingAttributeError once the base lines are written if
// AddCertificates was never called.
func (r *Resume) Display(w io.Writer) error {
	if err := r.Document.Display(w); err != nil {
		return err
	}
	if _, ok := r.Certificates(); !ok {
		return &MissingAttributeError{Type: "Resume", Attribute: "certificates"}
	}
	if _, err := fmt.Fprintf(w, "Applicant Name: %s\n", r.ApplicantName); err != nil {
		return fmt.Errorf("mixin: display resume: %w", err)
	}
	return nil
}

var (
	_ Displayer = (*Document)(nil)
	_ Displayer = (*Report)(nil)
	_ Displayer = (*Resume)(nil)
)
