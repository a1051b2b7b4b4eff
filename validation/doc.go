// Package validation validates one scalar value at a time against a chain of
// constraints and reports every failure as a structured Violation.
//
// A validator is built around a single value of unknown type. Constraint
// methods return the same builder so they can be chained, and Validate
// returns what has accumulated. A value of the wrong kind is reported as a
// "base" violation rather than rejected at construction.
//
// # Text
//
//	res := validation.NewText(name).
//	    Required().
//	    MinLength(2).
//	    MaxLength(64).
//	    Pattern(namePattern).
//	    CustomMessage(validation.Messages{validation.KindMin: "name is too short"}).
//	    Validate()
//	if !res.Valid() {
//	    return res.Err()
//	}
//
// TextValidator.Validate always returns a Result. NumberValidator.Validate
// returns nil when nothing failed:
//
//	if res := validation.NewNumber(age).Number().Max(130).Validate(); res != nil {
//	    return res.Err()
//	}
//
// # Struct Tag Validation
//
// ValidateStruct checks configuration-style structs using `validate` tags.
package validation
