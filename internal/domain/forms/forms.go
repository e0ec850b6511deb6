// Package forms models screen form state: one value bag per screen, a generic
// per-field change handler, and client-side validation of the cheap checks
// (required fields, password confirmation) before a request is ever issued.
// Authoritative validation stays server-side.
package forms

import (
	"strings"
)

// File is an attachment staged for a multipart submission.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Form holds a screen's field state as name -> current value.
type Form struct {
	values map[string]string
	files  map[string]File
}

// New creates an empty form, optionally seeded with initial values.
func New(initial map[string]string) *Form {
	f := &Form{
		values: make(map[string]string),
		files:  make(map[string]File),
	}
	for k, v := range initial {
		f.values[k] = v
	}
	return f
}

// Set updates one field; the generic change handler every screen shares.
func (f *Form) Set(name, value string) {
	f.values[name] = value
}

// Get returns a field's current value, empty when unset.
func (f *Form) Get(name string) string {
	return f.values[name]
}

// Attach stages a file under a field name. Attaching an empty file clears it.
func (f *Form) Attach(name string, file File) {
	if len(file.Content) == 0 {
		delete(f.files, name)
		return
	}
	f.files[name] = file
}

// File returns a staged attachment.
func (f *Form) File(name string) (File, bool) {
	file, ok := f.files[name]
	return file, ok
}

// HasFiles reports whether any attachment is staged; it decides between a
// JSON and a multipart submission.
func (f *Form) HasFiles() bool {
	return len(f.files) > 0
}

// Values returns a copy of the field map for serialization.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Files returns a copy of the staged attachments.
func (f *Form) Files() map[string]File {
	out := make(map[string]File, len(f.files))
	for k, v := range f.files {
		out[k] = v
	}
	return out
}

// SplitSkills converts the event form's comma-joined skills input into a
// trimmed list, dropping empties. The wire shape is always a list.
func SplitSkills(joined string) []string {
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
