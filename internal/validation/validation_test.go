package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name         string
		input        RegisterInput
		wantValid    bool
		wantMessages map[string]string
	}{
		{
			name: "valid input",
			input: RegisterInput{
				Name:      "Test User",
				Email:     "test@example.com",
				Password:  "password123",
				Password2: "password123",
			},
			wantValid: true,
		},
		{
			name:      "empty payload reports every required field",
			input:     RegisterInput{},
			wantValid: false,
			wantMessages: map[string]string{
				"name":      "Name field is required",
				"email":     "Email field is required",
				"password":  "Password field is required",
				"password2": "Confirm Password field is required",
			},
		},
		{
			name: "short name",
			input: RegisterInput{
				Name:      "A",
				Email:     "test@example.com",
				Password:  "password123",
				Password2: "password123",
			},
			wantValid:    false,
			wantMessages: map[string]string{"name": "Name must be between 2 and 30 characters"},
		},
		{
			name: "invalid email",
			input: RegisterInput{
				Name:      "Test User",
				Email:     "not-an-email",
				Password:  "password123",
				Password2: "password123",
			},
			wantValid:    false,
			wantMessages: map[string]string{"email": "Email is invalid"},
		},
		{
			name: "short password",
			input: RegisterInput{
				Name:      "Test User",
				Email:     "test@example.com",
				Password:  "abc",
				Password2: "abc",
			},
			wantValid:    false,
			wantMessages: map[string]string{"password": "Password must be at least 6 characters"},
		},
		{
			name: "mismatched passwords",
			input: RegisterInput{
				Name:      "Test User",
				Email:     "test@example.com",
				Password:  "password123",
				Password2: "password456",
			},
			wantValid:    false,
			wantMessages: map[string]string{"password2": "Passwords must match"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, ok := ValidateRegisterInput(tt.input)
			assert.Equal(t, tt.wantValid, ok)
			if tt.wantValid {
				assert.Empty(t, errs)
				return
			}
			for field, message := range tt.wantMessages {
				assert.Equal(t, message, errs[field])
			}
		})
	}
}

func TestValidateLoginInput(t *testing.T) {
	tests := []struct {
		name      string
		input     LoginInput
		wantValid bool
		wantField string
	}{
		{
			name:      "valid input",
			input:     LoginInput{Email: "test@example.com", Password: "password123"},
			wantValid: true,
		},
		{
			name:      "missing email",
			input:     LoginInput{Password: "password123"},
			wantField: "email",
		},
		{
			name:      "invalid email",
			input:     LoginInput{Email: "nope", Password: "password123"},
			wantField: "email",
		},
		{
			name:      "missing password",
			input:     LoginInput{Email: "test@example.com"},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, ok := ValidateLoginInput(tt.input)
			assert.Equal(t, tt.wantValid, ok)
			if !tt.wantValid {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestValidateProfileInput(t *testing.T) {
	valid := ProfileInput{
		Handle: "devhandle",
		Status: "Developer",
		Skills: "HTML,CSS,JS",
	}

	t.Run("valid input", func(t *testing.T) {
		errs, ok := ValidateProfileInput(valid)
		assert.True(t, ok)
		assert.Empty(t, errs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		errs, ok := ValidateProfileInput(ProfileInput{})
		assert.False(t, ok)
		assert.Equal(t, "Profile handle is required", errs["handle"])
		assert.Equal(t, "Status field is required", errs["status"])
		assert.Equal(t, "Skills field is required", errs["skills"])
	})

	t.Run("handle too short", func(t *testing.T) {
		in := valid
		in.Handle = "x"
		errs, ok := ValidateProfileInput(in)
		assert.False(t, ok)
		assert.Equal(t, "Handle needs to be between 2 and 40 characters", errs["handle"])
	})

	t.Run("invalid website and social URLs", func(t *testing.T) {
		in := valid
		in.Website = "not a url"
		in.Twitter = "also not a url"
		errs, ok := ValidateProfileInput(in)
		assert.False(t, ok)
		assert.Equal(t, "Not a valid URL", errs["website"])
		assert.Equal(t, "Not a valid URL", errs["twitter"])
	})

	t.Run("valid URLs pass", func(t *testing.T) {
		in := valid
		in.Website = "https://example.com"
		in.Youtube = "https://youtube.com/c/someone"
		errs, ok := ValidateProfileInput(in)
		assert.True(t, ok)
		assert.Empty(t, errs)
	})
}

func TestValidateExperienceInput(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		errs, ok := ValidateExperienceInput(ExperienceInput{
			Title:   "Developer",
			Company: "Acme",
			From:    "2020-01-01",
		})
		assert.True(t, ok)
		assert.Empty(t, errs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		errs, ok := ValidateExperienceInput(ExperienceInput{})
		assert.False(t, ok)
		assert.Equal(t, "Job title field is required", errs["title"])
		assert.Equal(t, "Company field is required", errs["company"])
		assert.Equal(t, "From date field is required", errs["from"])
	})
}

func TestValidateEducationInput(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		errs, ok := ValidateEducationInput(EducationInput{
			School:       "State University",
			Degree:       "BSc",
			FieldOfStudy: "CS",
			From:         "2015-09-01",
		})
		assert.True(t, ok)
		assert.Empty(t, errs)
	})

	t.Run("missing required fields", func(t *testing.T) {
		errs, ok := ValidateEducationInput(EducationInput{})
		assert.False(t, ok)
		assert.Equal(t, "School field is required", errs["school"])
		assert.Equal(t, "Degree field is required", errs["degree"])
		assert.Equal(t, "Field of study field is required", errs["fieldofstudy"])
		assert.Equal(t, "From date field is required", errs["from"])
	})
}

func TestValidatePostInput(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantValid   bool
		wantMessage string
	}{
		{
			name:      "valid text",
			text:      "This post is long enough.",
			wantValid: true,
		},
		{
			name:        "missing text",
			text:        "",
			wantMessage: "Text field is required",
		},
		{
			name:        "too short",
			text:        "short",
			wantMessage: "Post must be between 10 and 300 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, ok := ValidatePostInput(PostInput{Text: tt.text})
			assert.Equal(t, tt.wantValid, ok)
			if !tt.wantValid {
				assert.Equal(t, tt.wantMessage, errs["text"])
			}
		})
	}
}
