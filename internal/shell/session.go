package shell

// HistoryEntry is one line of scrollback: the raw input as submitted and
// the output the interpreter produced for it. Output == "" means the
// command produced no output; no recognized command ever emits an empty
// non-absent line.
type HistoryEntry struct {
	Input  string
	Output string
}

// HasOutput reports whether the entry carries an output line.
func (e HistoryEntry) HasOutput() bool {
	return e.Output != ""
}

// Session owns the navigation state and the scrollback for one browsing
// session. It is mutated only on the event-processing path, by the
// interpreter or by the direct-navigation handlers below; there is no
// persistence beyond the session.
type Session struct {
	section         Section
	selectedProject string
	selectedWork    string
	history         []HistoryEntry
}

// NewSession starts at the terminal root with no selections and an empty
// scrollback.
func NewSession() *Session {
	return &Session{section: SectionTerminal}
}

// Section returns the current section.
func (s *Session) Section() Section {
	return s.section
}

// SelectedProject returns the expanded project key, if any. The key is
// only meaningful while the projects section is current.
func (s *Session) SelectedProject() (string, bool) {
	return s.selectedProject, s.selectedProject != ""
}

// SelectedWork returns the expanded work-history key, if any.
func (s *Session) SelectedWork() (string, bool) {
	return s.selectedWork, s.selectedWork != ""
}

// EnterSection switches the current section and clears both selections.
// Clearing happens even when sec equals the current section; re-entering
// collapses whatever was expanded.
func (s *Session) EnterSection(sec Section) {
	s.section = sec
	s.selectedProject = ""
	s.selectedWork = ""
}

// SelectProject expands a project without changing the section.
func (s *Session) SelectProject(key string) {
	s.selectedProject = key
}

// SelectWork expands a work-history record without changing the section.
func (s *Session) SelectWork(key string) {
	s.selectedWork = key
}

// History returns the scrollback in submission order. The returned slice
// is a copy; entries are append-only and never edited in place.
func (s *Session) History() []HistoryEntry {
	return append([]HistoryEntry(nil), s.history...)
}

// HistoryLen returns the number of scrollback entries.
func (s *Session) HistoryLen() int {
	return len(s.history)
}

func (s *Session) appendHistory(e HistoryEntry) {
	s.history = append(s.history, e)
}
