package steps

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
)

func (t *testContext) theHeaderIs(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders substitutes fixture IDs and tokens into paths and
// request bodies.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{client_id}}", t.currentClientID.String())
	content = strings.ReplaceAll(content, "{{product_id}}", t.currentProductID.String())
	content = strings.ReplaceAll(content, "{{order_id}}", t.currentOrderID.String())
	content = strings.ReplaceAll(content, "{{class_id}}", t.currentClassID.String())
	content = strings.ReplaceAll(content, "{{genre_id}}", t.currentGenreID.String())
	content = strings.ReplaceAll(content, "{{last_created_id}}", t.lastCreatedID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	url := t.uri + path

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     raw,
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = parsed

	// Remember the ID of created resources so later steps can reference it.
	if idStr, ok := parsed["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastCreatedID = id
		}
	}

	return nil
}
