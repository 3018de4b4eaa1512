package validation

// ProfileInput is the create-or-edit profile payload. Absent optional fields
// stay empty and are left untouched on update.
type ProfileInput struct {
	Handle         string `json:"handle"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ValidateProfileInput checks a profile payload.
func ValidateProfileInput(in ProfileInput) (map[string]string, bool) {
	errs := map[string]string{}

	if isEmpty(in.Handle) {
		errs["handle"] = "Profile handle is required"
	} else if !lengthBetween(in.Handle, 2, 40) {
		errs["handle"] = "Handle needs to be between 2 and 40 characters"
	}

	if isEmpty(in.Status) {
		errs["status"] = "Status field is required"
	}

	if isEmpty(in.Skills) {
		errs["skills"] = "Skills field is required"
	}

	if !isEmpty(in.Website) && !isURL(in.Website) {
		errs["website"] = "Not a valid URL"
	}

	social := map[string]string{
		"youtube":   in.Youtube,
		"twitter":   in.Twitter,
		"facebook":  in.Facebook,
		"linkedin":  in.Linkedin,
		"instagram": in.Instagram,
	}
	for field, value := range social {
		if !isEmpty(value) && !isURL(value) {
			errs[field] = "Not a valid URL"
		}
	}

	return errs, len(errs) == 0
}
