package validation

// PostInput is the payload shared by post creation and commenting.
type PostInput struct {
	Text   string `json:"text"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ValidatePostInput checks a post or comment payload.
func ValidatePostInput(in PostInput) (map[string]string, bool) {
	errs := map[string]string{}

	if isEmpty(in.Text) {
		errs["text"] = "Text field is required"
	} else if !lengthBetween(in.Text, 10, 300) {
		errs["text"] = "Post must be between 10 and 300 characters"
	}

	return errs, len(errs) == 0
}
