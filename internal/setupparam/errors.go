package setupparam

import "fmt"

// CatalogError reports an invalid catalog literal: duplicate key, dangling
// DependsOn reference, or a dependency cycle. Catalogs are static, so this is
// fatal at startup and never recovered at run time.
type CatalogError struct {
	Catalog string
	Reason  string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("setupparam: invalid catalog %s: %s", e.Catalog, e.Reason)
}

// UnknownFieldError reports a lookup for a key absent from the active catalog.
type UnknownFieldError struct {
	Catalog string
	Key     string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("setupparam: unknown field %q in catalog %s", e.Key, e.Catalog)
}

// UnsupportedTypeError reports a request for an SP type with no registered
// calculation. Declared-but-stubbed types surface this as a user-facing
// "not yet supported" state rather than a session-aborting failure.
type UnsupportedTypeError struct {
	Type string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("setupparam: SP type %q is not supported", e.Type)
}
