package shell

// Section identifies one of the fixed views a visitor can navigate to.
type Section string

const (
	SectionTerminal Section = "terminal"
	SectionAbout    Section = "about"
	SectionSkills   Section = "skills"
	SectionWork     Section = "work"
	SectionProjects Section = "projects"
	SectionContact  Section = "contact"
)

// sectionOrder is the tab-cycling order; SectionTerminal is the root.
var sectionOrder = []Section{
	SectionTerminal,
	SectionAbout,
	SectionSkills,
	SectionWork,
	SectionProjects,
	SectionContact,
}

// Sections returns the navigable sections in display order.
func Sections() []Section {
	return append([]Section(nil), sectionOrder...)
}

// ParseSection resolves a cd target to a Section.
func ParseSection(name string) (Section, bool) {
	switch Section(name) {
	case SectionTerminal, SectionAbout, SectionSkills, SectionWork, SectionProjects, SectionContact:
		return Section(name), true
	}
	return "", false
}

// Next returns the section after s in cycling order, wrapping around.
func (s Section) Next() Section {
	for i, sec := range sectionOrder {
		if sec == s {
			return sectionOrder[(i+1)%len(sectionOrder)]
		}
	}
	return SectionTerminal
}

// Prev returns the section before s in cycling order, wrapping around.
func (s Section) Prev() Section {
	for i, sec := range sectionOrder {
		if sec == s {
			return sectionOrder[(i+len(sectionOrder)-1)%len(sectionOrder)]
		}
	}
	return SectionTerminal
}
