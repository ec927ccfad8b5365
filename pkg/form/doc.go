// Package form binds a validator.Schema to live form state.
//
// A Session owns one form's values, error lists, touched and dirty flags and
// the submitting/valid flags, and exposes the operations a UI layer calls in
// response to input events:
//
//	s, err := form.New(validator.LoginFormSchema(),
//	    form.WithInitialValues(validator.Values{"email": validator.String("")}),
//	    form.WithLogger(log),
//	)
//	onChange := s.HandleChange("email")
//	onBlur := s.HandleBlur("email")
//	submit := s.HandleSubmit(func(ctx context.Context, v validator.Values) error {
//	    return api.Login(ctx, v["email"].String(), v["password"].String())
//	})
//
// # Policy
//
// Policy decides when validation runs by itself: on every SetValue
// (ValidateOnChange, default on), when a field loses focus (ValidateOnBlur,
// default on), and once in New (ValidateOnMount, default off). LoadPolicy
// reads the flags from FORM_VALIDATE_ON_* environment variables.
//
// # State rules
//
//   - Errors never holds an empty list; a missing key means no error.
//   - IsValid reflects the most recent ValidateForm call.
//   - A field becomes dirty on its first write and stays dirty until ResetForm.
//   - Touched changes only through SetFieldTouched or HandleBlur.
//
// # Submission
//
// A SubmitHandler validates the whole form and calls the submit function only
// when it is valid. IsSubmitting is true for the duration and always returns
// to false. Errors and panics from the submit function are logged and
// swallowed; the function owns reporting them to the user. There is no
// re-entrancy guard: disable the submit control while IsSubmitting is true.
//
// # Bulk updates
//
// SetValues and ApplyPatch replace many values at once without validating.
// ApplyPatch takes an RFC 6902 JSON Patch over the values object, e.g. from a
// client that only sends diffs:
//
//	err := s.ApplyPatch([]byte(`[{"op": "replace", "path": "/email", "value": "a@b.co"}]`))
//
// # Concurrency
//
// All state access goes through one mutex per Session. The submit function
// runs without the lock held, so it may read the session.
package form
