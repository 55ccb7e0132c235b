package roboflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.roboflow.com"
	defaultTimeout = 60 * time.Second
)

type Config struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewClient(config *Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrAPIKeyNotSet
	}

	httpClient := config.Client
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:     config.APIKey,
		httpClient: httpClient,
		baseURL:    baseURL,
	}, nil
}

func (c *Client) buildURL(endpoint string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)
	return fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())
}

func (c *Client) doJSONRequest(ctx context.Context, method, endpoint string, params url.Values, body io.Reader, contentType string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(endpoint, params), body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// apiError extracts a usable message from a non-200 response body.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	message := strings.TrimSpace(string(body))
	if message == "" {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return fmt.Errorf("unexpected status code: %d (%s)", resp.StatusCode, message)
}

// Workspace resolves the workspace the API key belongs to. A failure here
// means the key is not valid for any workspace.
func (c *Client) Workspace(ctx context.Context) (*Workspace, error) {
	var root rootResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/", nil, nil, "", &root); err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}
	if root.Workspace == "" {
		return nil, ErrWorkspaceNotFound
	}

	var detail workspaceResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/"+root.Workspace, nil, nil, "", &detail); err != nil {
		return nil, fmt.Errorf("resolving workspace %s: %w", root.Workspace, err)
	}

	name := detail.Workspace.Name
	if name == "" {
		name = root.Workspace
	}
	return &Workspace{
		ID:   root.Workspace,
		Name: name,
	}, nil
}

// Project resolves a project within a workspace and returns a handle that
// can upload images into it.
func (c *Client) Project(ctx context.Context, workspaceID, projectID string) (*Project, error) {
	var detail projectResponse
	endpoint := fmt.Sprintf("/%s/%s", workspaceID, projectID)
	if err := c.doJSONRequest(ctx, http.MethodGet, endpoint, nil, nil, "", &detail); err != nil {
		return nil, fmt.Errorf("resolving project %s/%s: %w", workspaceID, projectID, err)
	}

	return &Project{
		ID:     projectID,
		Name:   detail.Project.Name,
		Type:   detail.Project.Type,
		client: c,
	}, nil
}

// Upload sends a single image into the project, assigned to a split and
// tagged with the given tag names.
func (p *Project) Upload(ctx context.Context, imagePath, split string, tags []string) error {
	file, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", imagePath, err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("closing form: %w", err)
	}

	params := url.Values{}
	params.Set("name", filepath.Base(imagePath))
	params.Set("split", split)
	for _, tag := range tags {
		params.Add("tag", tag)
	}

	var result uploadResponse
	endpoint := fmt.Sprintf("/dataset/%s/upload", p.ID)
	if err := p.client.doJSONRequest(ctx, http.MethodPost, endpoint, params, &buf, writer.FormDataContentType(), &result); err != nil {
		return err
	}
	if !result.Success && !result.Duplicate {
		if result.Message != "" {
			return fmt.Errorf("upload rejected: %s", result.Message)
		}
		return ErrUploadRejected
	}

	return nil
}
