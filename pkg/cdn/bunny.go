package cdn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clipstream/pkg/config"

	"github.com/hashicorp/go-retryablehttp"
)

const apiBase = "https://video.bunnycdn.com"

// Bunny Stream encode states; 4 means the video is ready.
const StatusEncoded = 4

// Client talks to the Bunny Stream video API. Only metadata operations are
// needed here; playback and upload go directly between the browser and the CDN.
type Client struct {
	apiKey     string
	libraryID  string
	baseURL    string
	httpClient *http.Client
}

type VideoInfo struct {
	GUID         string  `json:"guid"`
	Title        string  `json:"title"`
	Length       int     `json:"length"`
	Status       int     `json:"status"`
	ThumbnailURL string  `json:"thumbnailFileName"`
	AvailableRes string  `json:"availableResolutions"`
	Framerate    float64 `json:"frameRate"`
}

func NewClient(cfg *config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = nil

	return &Client{
		apiKey:     cfg.CDNAPIKey,
		libraryID:  cfg.CDNLibraryID,
		baseURL:    apiBase,
		httpClient: retryClient.StandardClient(),
	}
}

// CreateVideo registers a new video object in the CDN library and returns its
// GUID. The actual bytes are uploaded by the client against UploadURL.
func (c *Client) CreateVideo(ctx context.Context, title string) (*VideoInfo, error) {
	if c.apiKey == "" || c.libraryID == "" {
		return nil, fmt.Errorf("cdn client not configured")
	}

	body, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/library/%s/videos", c.baseURL, c.libraryID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("AccessKey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var info VideoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &info, nil
}

// GetVideoInfo fetches encode status and duration for a CDN video.
func (c *Client) GetVideoInfo(ctx context.Context, guid string) (*VideoInfo, error) {
	if c.apiKey == "" || c.libraryID == "" {
		return nil, fmt.Errorf("cdn client not configured")
	}

	url := fmt.Sprintf("%s/library/%s/videos/%s", c.baseURL, c.libraryID, guid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("AccessKey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("video %s not found in cdn library", guid)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var info VideoInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &info, nil
}

// DeleteVideo removes a video object (and its encodes) from the CDN library.
func (c *Client) DeleteVideo(ctx context.Context, guid string) error {
	if c.apiKey == "" || c.libraryID == "" {
		return fmt.Errorf("cdn client not configured")
	}

	url := fmt.Sprintf("%s/library/%s/videos/%s", c.baseURL, c.libraryID, guid)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("AccessKey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	return nil
}

// UploadURL is the endpoint the browser PUTs the raw video file to.
func (c *Client) UploadURL(guid string) string {
	return fmt.Sprintf("%s/library/%s/videos/%s", c.baseURL, c.libraryID, guid)
}
