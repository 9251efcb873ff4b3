package todolist

import "unicode/utf8"

// ValidateListName checks the length of name and that it is not one of
// existingNames. Names compare case-sensitively.
func ValidateListName(name string, existingNames []string) error {
	if err := validateNameLength(name); err != nil {
		return err
	}
	for _, existing := range existingNames {
		if existing == name {
			return ErrDuplicateListName
		}
	}
	return nil
}

// ValidateTodoName checks the length of a todo name.
func ValidateTodoName(name string) error {
	return validateNameLength(name)
}

func validateNameLength(name string) error {
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return ErrInvalidNameLength
	}
	return nil
}
