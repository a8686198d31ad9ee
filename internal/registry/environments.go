// Where: cli/internal/registry/environments.go
// What: Ordered environment registry.
// Why: Keep environment rows unique and in insertion order for display.
package registry

import "strings"

// Environments holds environment records in insertion order.
type Environments struct {
	records []EnvironmentRecord
}

// Has reports whether name is registered.
func (e *Environments) Has(name string) bool {
	return e.indexOf(name) >= 0
}

// Get returns the record for name.
func (e *Environments) Get(name string) (EnvironmentRecord, bool) {
	idx := e.indexOf(name)
	if idx < 0 {
		return EnvironmentRecord{}, false
	}
	return e.records[idx], true
}

// List returns a copy of the records in insertion order.
func (e *Environments) List() []EnvironmentRecord {
	out := make([]EnvironmentRecord, len(e.records))
	copy(out, e.records)
	return out
}

// Names returns environment names in insertion order.
func (e *Environments) Names() []string {
	names := make([]string, 0, len(e.records))
	for _, record := range e.records {
		names = append(names, record.Name)
	}
	return names
}

// Len returns the number of registered environments.
func (e *Environments) Len() int {
	return len(e.records)
}

func (e *Environments) prepare(name string, stack Stack, branch string) (EnvironmentRecord, error) {
	record := EnvironmentRecord{
		Name:   strings.TrimSpace(name),
		Stack:  stack,
		Branch: strings.TrimSpace(branch),
	}
	if record.Name == "" {
		return EnvironmentRecord{}, required("environment name")
	}
	if err := record.Stack.validate(); err != nil {
		return EnvironmentRecord{}, err
	}
	if record.Branch == "" {
		return EnvironmentRecord{}, required("branch")
	}
	if e.Has(record.Name) {
		return EnvironmentRecord{}, &DuplicateNameError{Kind: "environment", Name: record.Name}
	}
	return record, nil
}

func (e *Environments) append(record EnvironmentRecord) {
	e.records = append(e.records, record)
}

func (e *Environments) remove(name string) error {
	idx := e.indexOf(name)
	if idx < 0 {
		return &NotFoundError{Kind: "environment", Name: name}
	}
	e.records = append(e.records[:idx], e.records[idx+1:]...)
	return nil
}

func (e *Environments) indexOf(name string) int {
	for i, record := range e.records {
		if record.Name == name {
			return i
		}
	}
	return -1
}
