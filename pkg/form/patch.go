package form

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/shashibeit/ui-theme-material/pkg/validator"
)

// ApplyPatch applies an RFC 6902 JSON Patch to the form values, treating them
// as one JSON object keyed by field name. Every field whose value was added,
// changed or removed is marked dirty. No validation runs; call ValidateForm
// afterwards if needed. On error the state is left unchanged.
func (s *Session) ApplyPatch(patchJSON []byte) error {
	patch, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return errors.Join(ErrInvalidPatch, fmt.Errorf("decode: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.Values
	doc, err := sonic.Marshal(current.Any())
	if err != nil {
		return fmt.Errorf("form: encode values: %w", err)
	}

	modified, err := patch.Apply(doc)
	if err != nil {
		return errors.Join(ErrInvalidPatch, fmt.Errorf("apply: %w", err))
	}

	var raw map[string]any
	if err := sonic.Unmarshal(modified, &raw); err != nil {
		return errors.Join(ErrInvalidPatch, fmt.Errorf("result is not an object: %w", err))
	}
	next, err := validator.ValuesOf(raw)
	if err != nil {
		return errors.Join(ErrInvalidPatch, err)
	}

	for field, v := range next {
		if old, ok := current[field]; !ok || !old.Equal(v) {
			s.state.Dirty[field] = true
		}
	}
	for field := range current {
		if _, ok := next[field]; !ok {
			s.state.Dirty[field] = true
		}
	}
	s.state.Values = next
	return nil
}
