package handler

import (
	"time"

	"github.com/devlink/social-api/internal/core/ports"
)

// Request to service input mappers.

func toUpsertInput(req upsertProfileRequest) ports.UpsertProfileInput {
	return ports.UpsertProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Status:         req.Status,
		Skills:         req.Skills.list,
		SkillsCSV:      req.Skills.csv,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	}
}

func toExperienceInput(req experienceRequest) ports.ExperienceInput {
	return ports.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From.Time,
		To:          toTimePtr(req.To),
		Current:     req.Current,
		Description: req.Description,
	}
}

func toEducationInput(req educationRequest) ports.EducationInput {
	return ports.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From.Time,
		To:           toTimePtr(req.To),
		Current:      req.Current,
		Description:  req.Description,
	}
}

func toTimePtr(d *apiDate) *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
