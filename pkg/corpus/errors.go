package corpus

import "fmt"

// CaseNotFoundError reports a lookup for an id that is not in the
// corpus. This is a test-authoring defect; callers must not default.
type CaseNotFoundError struct {
	ID string
}

func (e *CaseNotFoundError) Error() string {
	return fmt.Sprintf("cannot find SQL case with id %q", e.ID)
}

// DuplicateCaseError reports two fixture files defining the same case
// id within one corpus. The build fails rather than letting file
// processing order decide which definition wins.
type DuplicateCaseError struct {
	ID       string
	Resource string
}

func (e *DuplicateCaseError) Error() string {
	return fmt.Sprintf("%s: duplicate SQL case id %q", e.Resource, e.ID)
}

// FormatError reports a parameter list whose length does not match the
// number of %s markers in the template.
type FormatError struct {
	CaseID  string
	Markers int
	Params  int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("case %q: template has %d value markers, got %d parameters", e.CaseID, e.Markers, e.Params)
}

// UnknownDialectError reports a dialect literal in a case restriction
// that is not part of the closed dialect set.
type UnknownDialectError struct {
	CaseID string
	Name   string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("case %q: unknown dialect %q", e.CaseID, e.Name)
}
