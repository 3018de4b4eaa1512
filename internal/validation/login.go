package validation

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateLoginInput checks a login payload.
func ValidateLoginInput(in LoginInput) (map[string]string, bool) {
	errs := map[string]string{}

	if isEmpty(in.Email) {
		errs["email"] = "Email field is required"
	} else if !isEmail(in.Email) {
		errs["email"] = "Email is invalid"
	}

	if isEmpty(in.Password) {
		errs["password"] = "Password field is required"
	}

	return errs, len(errs) == 0
}
