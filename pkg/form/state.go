package form

import (
	"maps"
	"slices"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

// State is a snapshot of a session's form state.
type State struct {
	Values       validator.Values
	Errors       map[string][]string
	Touched      map[string]bool
	Dirty        map[string]bool
	IsSubmitting bool
	IsValid      bool
}

func newState(values validator.Values) State {
	return State{
		Values:  values.Clone(),
		Errors:  make(map[string][]string),
		Touched: make(map[string]bool),
		Dirty:   make(map[string]bool),
		IsValid: true,
	}
}

func (st State) clone() State {
	out := st
	out.Values = st.Values.Clone()
	out.Errors = cloneErrors(st.Errors)
	out.Touched = maps.Clone(st.Touched)
	out.Dirty = maps.Clone(st.Dirty)
	return out
}

func cloneErrors(errs map[string][]string) map[string][]string {
	out := make(map[string][]string, len(errs))
	for k, v := range errs {
		out[k] = slices.Clone(v)
	}
	return out
}

// trueKeys returns the sorted keys whose flag is set.
func trueKeys(flags map[string]bool) []string {
	var out []string
	for k, on := range flags {
		if on {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
