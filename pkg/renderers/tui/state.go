package tui

// State tracks collected values and server-provided errors keyed by field
// name.
type State struct {
	values map[string]string
	errors map[string][]string
}

// NewState seeds the state with prefilled values and errors.
func NewState(prefill map[string]string, errs map[string][]string) *State {
	values := make(map[string]string, len(prefill))
	for k, v := range prefill {
		values[k] = v
	}
	errors := make(map[string][]string, len(errs))
	for k, v := range errs {
		errors[k] = append([]string(nil), v...)
	}
	return &State{values: values, errors: errors}
}

// Values returns the current value map (mutable).
func (s *State) Values() map[string]string {
	if s == nil {
		return nil
	}
	return s.values
}

// Value returns the value stored for name.
func (s *State) Value(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name. Empty values are removed so unanswered
// optional fields are left out of the submission.
func (s *State) Set(name, value string) {
	if s == nil {
		return
	}
	if value == "" {
		delete(s.values, name)
		return
	}
	s.values[name] = value
}

// ErrorsFor returns the errors attached to a field.
func (s *State) ErrorsFor(name string) []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	return s.errors[name]
}

// ClearErrors drops errors for a field once it has been answered again.
func (s *State) ClearErrors(name string) {
	if s == nil {
		return
	}
	delete(s.errors, name)
}
