package handler

import (
	"encoding/json"
	"fmt"
	"time"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Posts ---

type createPostRequest struct {
	Text string `json:"text" validate:"required"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

type removedResponse struct {
	Msg string `json:"msg"`
}

// --- Profile ---

// skillsField accepts the skills either as a JSON array of strings or as a
// single comma-separated string.
type skillsField struct {
	list []string
	csv  string
	set  bool
}

func (s *skillsField) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		s.list = list
		s.set = len(list) > 0
		return nil
	}
	var csv string
	if err := json.Unmarshal(b, &csv); err == nil {
		s.csv = csv
		s.set = csv != ""
		return nil
	}
	return fmt.Errorf("skills must be a string or a list of strings")
}

// apiDate accepts RFC 3339 timestamps as well as plain YYYY-MM-DD dates.
type apiDate struct {
	time.Time
}

func (d *apiDate) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return fmt.Errorf("invalid date %q", raw)
	}
	d.Time = t
	return nil
}

func (d apiDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

type upsertProfileRequest struct {
	Company        string      `json:"company"`
	Website        string      `json:"website"`
	Location       string      `json:"location"`
	Status         string      `json:"status" validate:"required"`
	Skills         skillsField `json:"skills"`
	Bio            string      `json:"bio"`
	GithubUsername string      `json:"githubusername"`
	Youtube        string      `json:"youtube"`
	Twitter        string      `json:"twitter"`
	Facebook       string      `json:"facebook"`
	Linkedin       string      `json:"linkedin"`
	Instagram      string      `json:"instagram"`
}

type experienceRequest struct {
	Title       string   `json:"title"   validate:"required"`
	Company     string   `json:"company" validate:"required"`
	Location    string   `json:"location"`
	From        apiDate  `json:"from"    validate:"required"`
	To          *apiDate `json:"to"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
}

type educationRequest struct {
	School       string   `json:"school"       validate:"required"`
	Degree       string   `json:"degree"       validate:"required"`
	FieldOfStudy string   `json:"fieldofstudy" validate:"required"`
	From         apiDate  `json:"from"         validate:"required"`
	To           *apiDate `json:"to"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
}
