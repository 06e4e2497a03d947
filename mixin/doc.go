// Package mixin demonstrates the Mixin pattern with composition.
//
// Go has no multiple inheritance. A "mixin" here is a small struct carrying one
// isolated capability (SourceMixin, CertificatesMixin). A derived document embeds
// the base Document plus the mixins it wants; the methods are promoted, and
// nothing is linearized implicitly.
//
// The optional attributes a mixin stores are only set when the matching Add
// method is called. Displaying a derived document before that is reported as a
// MissingAttributeError rather than papered over with a default.
package mixin
