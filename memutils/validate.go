package memutils

// Validatable is implemented by anything whose internal bookkeeping can be checked for
// consistency, so DebugValidate can act upon it
type Validatable interface {
	Validate() error
}
