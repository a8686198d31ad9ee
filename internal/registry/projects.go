// Where: cli/internal/registry/projects.go
// What: Ordered project registry with per-environment links.
// Why: Derive project IDs from links and keep environment columns in step with the environment registry.
package registry

import "strings"

// Projects holds project records in insertion order.
type Projects struct {
	records []ProjectRecord
}

// Has reports whether a project with name is registered.
func (p *Projects) Has(name string) bool {
	return p.indexOf(name) >= 0
}

// Get returns a copy of the record for name.
func (p *Projects) Get(name string) (ProjectRecord, bool) {
	idx := p.indexOf(name)
	if idx < 0 {
		return ProjectRecord{}, false
	}
	return p.records[idx].Clone(), true
}

// List returns deep copies of the records in insertion order.
func (p *Projects) List() []ProjectRecord {
	out := make([]ProjectRecord, 0, len(p.records))
	for _, record := range p.records {
		out = append(out, record.Clone())
	}
	return out
}

// Len returns the number of registered projects.
func (p *Projects) Len() int {
	return len(p.records)
}

// OnEnvironmentAdded gives every project an empty entry for env.
// Existing entries are left untouched.
func (p *Projects) OnEnvironmentAdded(env string) {
	for i := range p.records {
		if _, ok := p.records[i].Links[env]; !ok {
			p.records[i].Links[env] = ""
		}
		if _, ok := p.records[i].ProjectIDs[env]; !ok {
			p.records[i].ProjectIDs[env] = ""
		}
	}
}

// OnEnvironmentRemoved drops env from every project. Projects themselves are kept.
func (p *Projects) OnEnvironmentRemoved(env string) {
	for i := range p.records {
		delete(p.records[i].Links, env)
		delete(p.records[i].ProjectIDs, env)
	}
}

func (p *Projects) prepare(name string, links map[string]string, envs []string) (ProjectRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ProjectRecord{}, required("project name")
	}
	if p.Has(name) {
		return ProjectRecord{}, &ValidationError{Field: "project name", Reason: "is already used"}
	}
	if len(envs) == 0 {
		return ProjectRecord{}, &ValidationError{Reason: "add an environment before adding projects"}
	}

	record := ProjectRecord{
		Name:       name,
		Links:      make(map[string]string, len(envs)),
		ProjectIDs: make(map[string]string, len(envs)),
	}
	for _, env := range envs {
		link := strings.TrimSpace(links[env])
		record.Links[env] = link
		record.ProjectIDs[env] = ExtractProjectID(link)
	}
	return record, nil
}

func (p *Projects) append(record ProjectRecord) {
	p.records = append(p.records, record)
}

func (p *Projects) remove(name string) error {
	idx := p.indexOf(name)
	if idx < 0 {
		return &NotFoundError{Kind: "project", Name: name}
	}
	p.records = append(p.records[:idx], p.records[idx+1:]...)
	return nil
}

func (p *Projects) setLink(name, env, link string) error {
	idx := p.indexOf(name)
	if idx < 0 {
		return &NotFoundError{Kind: "project", Name: name}
	}
	link = strings.TrimSpace(link)
	p.records[idx].Links[env] = link
	p.records[idx].ProjectIDs[env] = ExtractProjectID(link)
	return nil
}

func (p *Projects) indexOf(name string) int {
	for i, record := range p.records {
		if record.Name == name {
			return i
		}
	}
	return -1
}
