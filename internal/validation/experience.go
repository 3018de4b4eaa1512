package validation

// ExperienceInput is the add-experience payload. Dates arrive as strings in
// either YYYY-MM-DD or RFC 3339 form.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ValidateExperienceInput checks an experience payload.
func ValidateExperienceInput(in ExperienceInput) (map[string]string, bool) {
	errs := map[string]string{}

	if isEmpty(in.Title) {
		errs["title"] = "Job title field is required"
	}
	if isEmpty(in.Company) {
		errs["company"] = "Company field is required"
	}
	if isEmpty(in.From) {
		errs["from"] = "From date field is required"
	}

	return errs, len(errs) == 0
}
