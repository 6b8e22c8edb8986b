// Package content holds the static registries behind the portfolio: the
// profile, the project and work-history tables, the fortune list, and the
// telnet banner. Everything is read-only after load.
package content

// Contact is how the profile owner can be reached.
type Contact struct {
	Email    string `yaml:"email"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Website  string `yaml:"website"`
}

// SkillGroup is one area of the skills table.
type SkillGroup struct {
	Area  string   `yaml:"area"`
	Items []string `yaml:"items"`
}

// Profile is the static biography shown in the about and skills sections.
type Profile struct {
	Name     string       `yaml:"name"`
	Tagline  string       `yaml:"tagline"`
	Location string       `yaml:"location"`
	About    string       `yaml:"about"` // markdown
	Skills   []SkillGroup `yaml:"skills"`
	Contact  Contact      `yaml:"contact"`
}

// Project is one entry in the project registry, keyed by the name used
// with the view command.
type Project struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"` // markdown
	Tools       []string `yaml:"tools"`
	Link        string   `yaml:"link"`
}

// WorkRecord is one entry in the work-history registry.
type WorkRecord struct {
	Key          string   `yaml:"key"`
	Organization string   `yaml:"organization"`
	Role         string   `yaml:"role"`
	Start        string   `yaml:"start"`
	End          string   `yaml:"end"`
	Summary      []string `yaml:"summary"`
}

// Registry is the full static content set supplied at startup. Lookups
// return values; the backing slices and maps are never mutated after
// Load.
type Registry struct {
	profile      Profile
	projects     []Project
	projectIndex map[string]int
	work         []WorkRecord
	workIndex    map[string]int
	fortunes     []string
	telnetBanner string
}

// Profile returns the static biography.
func (r *Registry) Profile() Profile {
	return r.profile
}

// Projects returns the project registry in display order.
func (r *Registry) Projects() []Project {
	return append([]Project(nil), r.projects...)
}

// Project looks up a project by key.
func (r *Registry) Project(key string) (Project, bool) {
	i, ok := r.projectIndex[key]
	if !ok {
		return Project{}, false
	}
	return r.projects[i], true
}

// ProjectKeys returns the project keys in display order.
func (r *Registry) ProjectKeys() []string {
	keys := make([]string, len(r.projects))
	for i, p := range r.projects {
		keys[i] = p.Key
	}
	return keys
}

// Work returns the work-history registry in display order.
func (r *Registry) Work() []WorkRecord {
	return append([]WorkRecord(nil), r.work...)
}

// WorkRecord looks up a work-history record by key.
func (r *Registry) WorkRecord(key string) (WorkRecord, bool) {
	i, ok := r.workIndex[key]
	if !ok {
		return WorkRecord{}, false
	}
	return r.work[i], true
}

// WorkKeys returns the work-history keys in display order.
func (r *Registry) WorkKeys() []string {
	keys := make([]string, len(r.work))
	for i, w := range r.work {
		keys[i] = w.Key
	}
	return keys
}

// Fortunes returns the quotation list.
func (r *Registry) Fortunes() []string {
	return append([]string(nil), r.fortunes...)
}

// TelnetBanner returns the decorative block printed for the easter-egg
// telnet host.
func (r *Registry) TelnetBanner() string {
	return r.telnetBanner
}
