package vanilla

// Class names used by the built-in templates. Theme tokens override the
// option and phone classes; the form chrome classes are fixed.
const (
	ClassForm      = "fw-form"
	ClassField     = "fw-field"
	ClassErrors    = "fw-errors"
	ClassActions   = "fw-actions"
	ClassPhone     = "fw-phone"
	ClassOptionIn  = "experience-input"
	ClassOptionRow = "experience-option"
)

// Theme token keys read from the selected go-theme manifest.
const (
	TokenOptionItemClass     = "option.itemClass"
	TokenOptionInputClass    = "option.inputClass"
	TokenOptionSelectedClass = "option.selectedClass"
	TokenPhoneInputClass     = "phone.inputClass"
)
