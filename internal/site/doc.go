// Package site writes the HTML documentation site for a host model.
//
// A run is a fixed sequence of stages (see stage_names.go). The model is validated
// and every output path is planned before anything touches the output directory, so
// malformed input or colliding page paths never leave a half-written site. After
// that, pages are written one at a time and the first failure aborts the run; pages
// written before the failure stay on disk.
//
// Every page is rendered with its own templates.PageContext. The relative root for
// a file page comes from the directory depth of its relative name, for a type page
// from the number of namespace separators in its qualified name.
package site
