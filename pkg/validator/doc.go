// Package validator provides small, composable validation rules with
// field-level errors.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply evaluates rules in order and aggregates failures into
// ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.MinLenString("name", name, 1),
//	    validator.MaxLenString("name", name, 255),
//	    validator.ValidEnum("status", status, []string{"ACTIVE", "ARCHIVED"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[i].Field, verrs[i].Message, verrs[i].Code
//	}
//
// String length rules count Unicode code points, so "ünïcode" has length 7.
package validator
