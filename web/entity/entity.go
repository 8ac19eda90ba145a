// Package entity defines the request and response shapes of the HTTP API.
package entity

import (
	"devfolio/database/model"
)

// Token is the response body of a successful login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProjectPayload is the request body for creating or replacing a project.
// Fields the caller omits fall back to their zero value and overwrite the
// stored field (full-replace semantics).
type ProjectPayload struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	GithubLink  *string  `json:"github_link"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
}

// CVPayload is the request body for replacing the CV singleton.
type CVPayload struct {
	About      string        `json:"about"`
	Experience string        `json:"experience"`
	Education  string        `json:"education"`
	PhotoUrl   string        `json:"photo_url"`
	Skills     []model.Skill `json:"skills"`
}

// TranslationUpsert is the request body for a bulk translation update of
// one language.
type TranslationUpsert struct {
	Language     string            `json:"language" binding:"required"`
	Translations map[string]string `json:"translations" binding:"required"`
}

// ContactRequest is a contact-form submission relayed by mail.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}
