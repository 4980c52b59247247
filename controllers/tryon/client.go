package tryonControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Client talks to the external image compositing service that overlays a
// garment onto a user photo.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

type compositeResponse struct {
	GeneratedImageURL string `json:"generatedImageUrl"`
	Error             *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Composite uploads the user photo together with the garment image URL and
// returns the URL of the generated composite. One shot, no retry.
func (c *Client) Composite(ctx context.Context, userImage io.Reader, filename, garmentImageURL string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("userImage", filename)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if _, err := io.Copy(part, userImage); err != nil {
		return "", fmt.Errorf("read user image: %w", err)
	}
	if err := writer.WriteField("garmentImageUrl", garmentImageURL); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach compositing service: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("compositing service error (%d): %s", resp.StatusCode, string(respBody))
	}

	var parsed compositeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse compositing response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("compositing error: %s", parsed.Error.Message)
	}
	if parsed.GeneratedImageURL == "" {
		return "", fmt.Errorf("compositing service returned empty image URL")
	}

	return parsed.GeneratedImageURL, nil
}
