package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
)

type client struct {
	host  string
	token string

	c *http.Client
}

// NewClient returns client with http.DefaultClient.
func NewClient(host, token string) Amore {
	return NewClientWithHTTPClient(host, token, &http.Client{})
}

// NewClientWithHTTPClient returns client with provided http.Client.
func NewClientWithHTTPClient(host, token string, c *http.Client) Amore {
	return &client{
		host:  host,
		token: token,
		c:     c,
	}
}

// Like likes the target profile.
// Like can return ErrInvalidRequest, ErrNotFound besides general api package's errors.
func (c *client) Like(ctx context.Context, targetID string) error {
	return c.interact(ctx, "like", targetID)
}

// Unlike withdraws the like of the target profile.
func (c *client) Unlike(ctx context.Context, targetID string) error {
	return c.interact(ctx, "unlike", targetID)
}

// View records a visit of the target profile.
// View can return ErrForbidden when either side blocked the other.
func (c *client) View(ctx context.Context, targetID string) error {
	return c.interact(ctx, "view", targetID)
}

// Block hides the target profile.
func (c *client) Block(ctx context.Context, targetID string) error {
	return c.interact(ctx, "block", targetID)
}

// Unblock reveals the target profile back.
func (c *client) Unblock(ctx context.Context, targetID string) error {
	return c.interact(ctx, "unblock", targetID)
}

func (c *client) interact(ctx context.Context, action, targetID string) error {
	if targetID == "" {
		return ErrInvalidRequest
	}

	if err := c.sendRequest(ctx, http.MethodPost,
		fmt.Sprintf("v1/profiles/%s/%s", targetID, action), nil, nil); err != nil {
		return fmt.Errorf("failed to make %s request: %w", action, err)
	}

	return nil
}

// Liked returns profiles the caller liked.
func (c *client) Liked(ctx context.Context) ([]Profile, error) {
	return c.listProfiles(ctx, "liked")
}

// Blocked returns profiles the caller blocked.
func (c *client) Blocked(ctx context.Context) ([]Profile, error) {
	return c.listProfiles(ctx, "blocked")
}

// Viewed returns profiles the caller visited.
func (c *client) Viewed(ctx context.Context) ([]Profile, error) {
	return c.listProfiles(ctx, "viewed")
}

// Viewers returns profiles which visited the caller.
func (c *client) Viewers(ctx context.Context) ([]Profile, error) {
	return c.listProfiles(ctx, "viewers")
}

// Matches returns profiles which like the caller back.
func (c *client) Matches(ctx context.Context) ([]Profile, error) {
	return c.listProfiles(ctx, "matches")
}

func (c *client) listProfiles(ctx context.Context, kind string) ([]Profile, error) {
	var out []Profile
	if err := c.sendRequest(ctx, http.MethodGet,
		fmt.Sprintf("v1/profiles/me/%s", kind), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to make %s request: %w", kind, err)
	}

	return out, nil
}

// AddTag links the named tag to the caller's profile.
func (c *client) AddTag(ctx context.Context, name string) error {
	req := TagRequest{Name: name}

	if err := c.sendRequest(ctx, http.MethodPost, "v1/profiles/me/tags", &req, nil); err != nil {
		return fmt.Errorf("failed to make AddTag request: %w", err)
	}

	return nil
}

// RemoveTag unlinks the named tag from the caller's profile.
func (c *client) RemoveTag(ctx context.Context, name string) error {
	req := TagRequest{Name: name}

	if err := c.sendRequest(ctx, http.MethodDelete, "v1/profiles/me/tags", &req, nil); err != nil {
		return fmt.Errorf("failed to make RemoveTag request: %w", err)
	}

	return nil
}

// PopularTags returns count-ranked tags.
func (c *client) PopularTags(ctx context.Context, limit int) ([]TagCount, error) {
	var out []TagCount
	if err := c.sendRequest(ctx, http.MethodGet,
		fmt.Sprintf("v1/tags/popular?limit=%d", limit), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to make PopularTags request: %w", err)
	}

	return out, nil
}

// ReorderPhotos applies the permutation to the caller's photo slots.
func (c *client) ReorderPhotos(ctx context.Context, order [PhotoSlotsCount]int) error {
	req := ReorderPhotosRequest{Order: order}

	if err := c.sendRequest(ctx, http.MethodPut, "v1/profiles/me/photos/order", &req, nil); err != nil {
		return fmt.Errorf("failed to make ReorderPhotos request: %w", err)
	}

	return nil
}

// UploadPhoto stores the image into the slot and returns the stored name.
func (c *client) UploadPhoto(ctx context.Context, index int, r io.Reader) (string, error) {
	if index < 0 || index >= PhotoSlotsCount {
		return "", ErrInvalidRequest
	}

	body := bytes.Buffer{}
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("photo", "photo")
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return "", fmt.Errorf("failed to copy photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/profiles/me/photos/%d", c.host, index), &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	rr, err := c.c.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make UploadPhoto request: %w", err)
	}
	defer rr.Body.Close() // nolint

	if err := responseError(rr); err != nil {
		return "", err
	}

	var resp UploadPhotoResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return resp.Name, nil
}

// DeletePhoto removes the photo from the slot.
func (c *client) DeletePhoto(ctx context.Context, index int) error {
	if index < 0 || index >= PhotoSlotsCount {
		return ErrInvalidRequest
	}

	if err := c.sendRequest(ctx, http.MethodDelete,
		fmt.Sprintf("v1/profiles/me/photos/%d", index), nil, nil); err != nil {
		return fmt.Errorf("failed to make DeletePhoto request: %w", err)
	}

	return nil
}

// Notifications returns the caller's notifications, newest first.
func (c *client) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := c.sendRequest(ctx, http.MethodGet, "v1/profiles/me/notifications", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to make Notifications request: %w", err)
	}

	return out, nil
}

// MarkNotificationRead marks the caller's notification as read.
func (c *client) MarkNotificationRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidRequest
	}

	if err := c.sendRequest(ctx, http.MethodPost,
		fmt.Sprintf("v1/profiles/me/notifications/%s/read", id), nil, nil); err != nil {
		return fmt.Errorf("failed to make MarkNotificationRead request: %w", err)
	}

	return nil
}

// DeleteNotification deletes the caller's notification.
func (c *client) DeleteNotification(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidRequest
	}

	if err := c.sendRequest(ctx, http.MethodDelete,
		fmt.Sprintf("v1/profiles/me/notifications/%s", id), nil, nil); err != nil {
		return fmt.Errorf("failed to make DeleteNotification request: %w", err)
	}

	return nil
}

func (c *client) sendRequest(ctx context.Context, method, endpoint string, data, resp interface{}) error {
	if v, ok := data.(Validator); ok && !v.IsValid() {
		return ErrInvalidRequest
	}

	var body io.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/%s", c.host, endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	r.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	rr, err := c.c.Do(r)
	if err != nil {
		return fmt.Errorf("failed to do request: %w", err)
	}
	defer rr.Body.Close() // nolint

	if err := responseError(rr); err != nil {
		return err
	}

	if resp == nil {
		return nil
	}

	if err := json.NewDecoder(rr.Body).Decode(resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func responseError(rr *http.Response) error {
	if rr.StatusCode >= 200 && rr.StatusCode < 300 {
		return nil
	}

	switch rr.StatusCode {
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		var e Error
		if err := json.NewDecoder(rr.Body).Decode(&e); err != nil {
			return errors.Errorf("request failed with status %d", rr.StatusCode)
		}
		return errors.Errorf("request failed: %s", e.Error)
	}
}
