// Package client is the HTTP client for the whiteboard API. It covers the
// whole surface and satisfies board.Backend for the element mutations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"whiteboard-server/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
}

func (c *Client) CreateCanvas(ctx context.Context, name string) (models.Canvas, error) {
	var canvas models.Canvas
	body := map[string]string{"name": name}
	err := c.do(ctx, http.MethodPost, "/canvases", body, http.StatusCreated, &canvas, models.ErrCanvasNotFound)
	return canvas, err
}

func (c *Client) ListCanvases(ctx context.Context) ([]models.Canvas, error) {
	canvases := []models.Canvas{}
	err := c.do(ctx, http.MethodGet, "/canvases", nil, http.StatusOK, &canvases, models.ErrCanvasNotFound)
	return canvases, err
}

// GetCanvas fetches a canvas together with its elements.
func (c *Client) GetCanvas(ctx context.Context, canvasID string) (models.Canvas, []models.Element, error) {
	var result struct {
		Canvas   models.Canvas    `json:"canvas"`
		Elements []models.Element `json:"elements"`
	}
	path := "/canvases/" + canvasID
	err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &result, models.ErrCanvasNotFound)
	return result.Canvas, result.Elements, err
}

func (c *Client) ListElements(ctx context.Context, canvasID string) ([]models.Element, error) {
	elements := []models.Element{}
	path := "/canvases/" + canvasID + "/elements"
	err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &elements, models.ErrCanvasNotFound)
	return elements, err
}

func (c *Client) CreateElement(ctx context.Context, canvasID string, input models.ElementInput) (models.Element, error) {
	var element models.Element
	path := "/canvases/" + canvasID + "/elements"
	err := c.do(ctx, http.MethodPost, path, input, http.StatusCreated, &element, models.ErrCanvasNotFound)
	return element, err
}

func (c *Client) UpdateElement(ctx context.Context, canvasID, elementID string, patch models.ElementPatch) (models.Element, error) {
	var element models.Element
	path := "/canvases/" + canvasID + "/elements/" + elementID
	err := c.do(ctx, http.MethodPut, path, patch, http.StatusOK, &element, models.ErrElementNotFound)
	return element, err
}

func (c *Client) DeleteElement(ctx context.Context, canvasID, elementID string) (models.Element, error) {
	var result struct {
		Message        string         `json:"message"`
		DeletedElement models.Element `json:"deletedElement"`
	}
	path := "/canvases/" + canvasID + "/elements/" + elementID
	err := c.do(ctx, http.MethodDelete, path, nil, http.StatusOK, &result, models.ErrElementNotFound)
	return result.DeletedElement, err
}

// do issues one request. 404 maps to notFound, 400 to a ValidationError
// carrying the server's message, anything else unexpected to a generic
// error.
func (c *Client) do(ctx context.Context, method, path string, body any, wantStatus int, out any, notFound error) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return notFound
		case http.StatusBadRequest:
			return models.NewValidationError(apiErrorMessage(resp.Body))
		default:
			return fmt.Errorf("%s %s: unexpected status %s", method, path, resp.Status)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func apiErrorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil || payload.Error == "" {
		return "bad request"
	}
	return payload.Error
}
