package input

// Entry is one key/value pair of a query parameter or header list.
// Disabled entries stay in the list but are never sent.
type Entry struct {
	Key     string
	Value   string
	Enabled bool
}

// Field names one of the editable fields of an Entry.
type Field int

const (
	FieldKey Field = iota
	FieldValue
	FieldEnabled
)

// EntryList is an ordered sequence of entries. List order is display order
// and derivation order. It is only mutated through Add, Remove and Update.
type EntryList struct {
	entries []Entry
}

func NewEntryList(entries ...Entry) *EntryList {
	l := &EntryList{}
	l.entries = append(l.entries, entries...)
	return l
}

// Add appends an empty, enabled entry.
func (l *EntryList) Add() {
	l.entries = append(l.entries, Entry{Enabled: true})
}

// Remove deletes the entry at index. Out-of-range indexes are ignored.
func (l *EntryList) Remove(index int) {
	if index < 0 || index >= len(l.entries) {
		return
	}
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
}

// Update replaces one field of the entry at index, keeping the others.
// For FieldEnabled, "true", "1", "on" and "yes" enable the entry and
// anything else disables it.
func (l *EntryList) Update(index int, field Field, value string) {
	switch field {
	case FieldKey:
		l.SetKey(index, value)
	case FieldValue:
		l.SetValue(index, value)
	case FieldEnabled:
		l.SetEnabled(index, parseEnabled(value))
	}
}

func (l *EntryList) SetKey(index int, key string) {
	l.update(index, func(e *Entry) { e.Key = key })
}

func (l *EntryList) SetValue(index int, value string) {
	l.update(index, func(e *Entry) { e.Value = value })
}

func (l *EntryList) SetEnabled(index int, enabled bool) {
	l.update(index, func(e *Entry) { e.Enabled = enabled })
}

// Toggle flips the enabled flag of the entry at index.
func (l *EntryList) Toggle(index int) {
	l.update(index, func(e *Entry) { e.Enabled = !e.Enabled })
}

func (l *EntryList) update(index int, fn func(e *Entry)) {
	if index < 0 || index >= len(l.entries) {
		return
	}
	fn(&l.entries[index])
}

func (l *EntryList) Len() int {
	return len(l.entries)
}

// At returns the entry at index and whether it exists.
func (l *EntryList) At(index int) (Entry, bool) {
	if index < 0 || index >= len(l.entries) {
		return Entry{}, false
	}
	return l.entries[index], true
}

// Entries returns a copy of all entries, disabled ones included.
func (l *EntryList) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Active returns the enabled entries that have a non-empty key, in order.
func (l *EntryList) Active() []Entry {
	return ActiveEntries(l.entries)
}

// Clone returns an independent copy of the list.
func (l *EntryList) Clone() *EntryList {
	return NewEntryList(l.entries...)
}

func ActiveEntries(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Enabled && e.Key != "" {
			out = append(out, e)
		}
	}
	return out
}

func parseEnabled(s string) bool {
	switch s {
	case "1", "t", "T", "true", "TRUE", "True", "on", "yes":
		return true
	default:
		return false
	}
}
