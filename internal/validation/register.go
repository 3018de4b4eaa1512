package validation

// RegisterInput is the registration payload.
type RegisterInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// ValidateRegisterInput checks a registration payload.
func ValidateRegisterInput(in RegisterInput) (map[string]string, bool) {
	errs := map[string]string{}

	if isEmpty(in.Name) {
		errs["name"] = "Name field is required"
	} else if !lengthBetween(in.Name, 2, 30) {
		errs["name"] = "Name must be between 2 and 30 characters"
	}

	if isEmpty(in.Email) {
		errs["email"] = "Email field is required"
	} else if !isEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}

	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	} else if !lengthBetween(in.Password, 6, 30) {
		errs["password"] = "Password must be at least 6 characters"
	}

	if isEmpty(in.Password2) {
		errs["password2"] = "Confirm Password field is required"
	} else if in.Password != in.Password2 {
		errs["password2"] = "Passwords must match"
	}

	return errs, len(errs) == 0
}
