package dancoren

// Form is an opaque handle identifying a visual shape, supplied by the
// embedder's asset/form catalog (spec.md §1: form catalogs are external
// collaborators, supplied here only as opaque handles). The core stores a
// Form by value and never dereferences Meta.
type Form struct {
	// ID is a renderer-defined handle; the core treats it as an inert value.
	ID uint32
	// Meta is renderer-side metadata the core never inspects or mutates.
	Meta any
}

// SphereForm is the column store's default Form sentinel (spec.md §4.1
// "form = SPHERE sentinel"), used to initialize newly allocated slots
// before a spawn descriptor supplies its own Form.
var SphereForm = Form{ID: 0}
