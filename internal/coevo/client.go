// Package coevo is a minimal client for the CoEvo forum API: enough to
// create a thread, upload a zip artifact and attach it.
package coevo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/triad369/launchpad/internal/logger"
)

var coevoLogs = logger.PackageLogger("coevo", "🌐 COEVO")

// Board is a CoEvo discussion board.
type Board struct {
	ID   int    `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Thread is a CoEvo discussion thread.
type Thread struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Post is one reply in a thread.
type Post struct {
	ID int `json:"id"`
}

// Artifact is an uploaded file the server can attach to threads.
type Artifact struct {
	ID int `json:"id"`
}

// Client talks to one CoEvo server with a bearer token. The token is
// opaque to the hub; only the server interprets it.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

// New builds a client for baseURL with the given token.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Login exchanges handle+password for an access token.
func Login(baseURL, handle, password string) (string, error) {
	body, _ := json.Marshal(map[string]string{"handle": handle, "password": password})
	resp, err := http.Post(strings.TrimRight(baseURL, "/")+"/api/auth/login",
		"application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return "", err
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("invalid login response: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login succeeded but no access_token returned")
	}
	return out.AccessToken, nil
}

func (c *Client) do(method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: invalid response: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) postJSON(path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	return c.do(http.MethodPost, path, bytes.NewReader(data), "application/json", out)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
}

// ListBoards fetches all boards.
func (c *Client) ListBoards() ([]Board, error) {
	var boards []Board
	if err := c.do(http.MethodGet, "/api/boards", nil, "", &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// FindBoardID resolves a board slug, falling back to the first board when
// the slug is unknown.
func (c *Client) FindBoardID(slug string) (int, error) {
	boards, err := c.ListBoards()
	if err != nil {
		return 0, err
	}
	for _, b := range boards {
		if b.Slug == slug {
			return b.ID, nil
		}
	}
	if len(boards) == 0 {
		return 0, fmt.Errorf("no boards found on server")
	}
	coevoLogs.Warn("Board %q not found, falling back to %q", slug, boards[0].Slug)
	return boards[0].ID, nil
}

// CreateThread opens a new thread on a board.
func (c *Client) CreateThread(boardID int, title string) (Thread, error) {
	var thread Thread
	err := c.postJSON(fmt.Sprintf("/api/boards/%d/threads", boardID),
		map[string]string{"title": title}, &thread)
	return thread, err
}

// CreatePost adds a markdown post to a thread.
func (c *Client) CreatePost(threadID int, contentMD string) (Post, error) {
	var post Post
	err := c.postJSON(fmt.Sprintf("/api/threads/%d/posts", threadID),
		map[string]string{"content_md": contentMD}, &post)
	return post, err
}

// UploadArtifact streams a zip as a multipart upload and returns the
// artifact the server minted for it.
func (c *Client) UploadArtifact(zipPath string) (Artifact, error) {
	f, err := os.Open(zipPath)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to open %s: %w", zipPath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(zipPath))
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return Artifact{}, fmt.Errorf("failed to read %s: %w", zipPath, err)
	}
	if err := mw.Close(); err != nil {
		return Artifact{}, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	var art Artifact
	if err := c.do(http.MethodPost, "/api/artifacts/upload", &buf, mw.FormDataContentType(), &art); err != nil {
		return Artifact{}, err
	}
	return art, nil
}

// AttachArtifact links an uploaded artifact to a thread.
func (c *Client) AttachArtifact(artifactID, threadID int) error {
	return c.do(http.MethodPost,
		fmt.Sprintf("/api/artifacts/%d/attach/thread/%d", artifactID, threadID), nil, "", nil)
}

// AddRepoLink registers a repository link on the server.
func (c *Client) AddRepoLink(url, title, description string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	return c.postJSON("/api/repos", map[string]any{
		"url":         url,
		"title":       title,
		"description": description,
		"tags":        tags,
	}, nil)
}

// PublishResult reports what a publish run created.
type PublishResult struct {
	ThreadID   int
	ArtifactID int
	BoardSlug  string
	ThreadURL  string
}

// PublishZip creates a thread with a summary post, uploads the zip and
// attaches it. repoURL, when set, also registers a repo link.
func (c *Client) PublishZip(zipPath, title, boardSlug, summary, repoURL string, tags []string) (PublishResult, error) {
	boardID, err := c.FindBoardID(boardSlug)
	if err != nil {
		return PublishResult{}, err
	}
	thread, err := c.CreateThread(boardID, title)
	if err != nil {
		return PublishResult{}, err
	}
	if _, err := c.CreatePost(thread.ID, summary); err != nil {
		return PublishResult{}, err
	}
	art, err := c.UploadArtifact(zipPath)
	if err != nil {
		return PublishResult{}, err
	}
	if err := c.AttachArtifact(art.ID, thread.ID); err != nil {
		return PublishResult{}, err
	}
	if repoURL != "" {
		if err := c.AddRepoLink(repoURL, title, "Launchpad published repo", tags); err != nil {
			return PublishResult{}, err
		}
	}
	return PublishResult{
		ThreadID:   thread.ID,
		ArtifactID: art.ID,
		BoardSlug:  boardSlug,
		ThreadURL:  fmt.Sprintf("%s/boards/%s/threads/%d", c.BaseURL, boardSlug, thread.ID),
	}, nil
}
