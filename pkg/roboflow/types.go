package roboflow

import "errors"

var (
	ErrAPIKeyNotSet      = errors.New("roboflow API key not set")
	ErrWorkspaceNotFound = errors.New("no workspace associated with API key")
	ErrUploadRejected    = errors.New("upload rejected")
)

// Workspace is the organizational handle the API key authenticates into.
type Workspace struct {
	ID   string
	Name string
}

// Project is an upload target inside a workspace.
type Project struct {
	ID   string
	Name string
	Type string

	client *Client
}

type rootResponse struct {
	Workspace string `json:"workspace"`
}

type workspaceResponse struct {
	Workspace struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"workspace"`
}

type projectResponse struct {
	Project struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"project"`
}

type uploadResponse struct {
	Success   bool   `json:"success"`
	Duplicate bool   `json:"duplicate"`
	ID        string `json:"id"`
	Message   string `json:"message,omitempty"`
}
