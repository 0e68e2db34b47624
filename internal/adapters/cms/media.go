package cms

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"celebrationgarden/internal/domain"
)

// UploadPDF uploads a finished scrapbook PDF to the media library and
// returns its durable URL. PDFs go up as raw files; the media host must not
// try to transform them.
func (c *Client) UploadPDF(ctx context.Context, filename string, data []byte) (string, error) {
	url, err := c.uploadMedia(ctx, filename, "application/pdf", data)
	if err != nil {
		return "", fmt.Errorf("upload pdf %q: %w", filename, err)
	}
	return url, nil
}

// uploadMedia posts one file to the store's upload endpoint and returns the
// hosted URL.
func (c *Client) uploadMedia(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if filename == "" {
		filename = "upload"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, filename))
	if contentType != "" {
		hdr.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req.Header, mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("media upload: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w: %v", domain.ErrUpstreamUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		c.logger.Error("media upload failed", "status", resp.StatusCode, "body", truncate(string(body), 200))
		return "", fmt.Errorf("media upload status %d: %w", resp.StatusCode, domain.ErrUpstreamUnavailable)
	}

	// The endpoint answers with an array of uploaded files.
	doc := gjson.ParseBytes(body)
	first := doc
	if doc.IsArray() {
		arr := doc.Array()
		if len(arr) == 0 {
			return "", fmt.Errorf("media upload returned no files: %w", domain.ErrUpstreamUnavailable)
		}
		first = arr[0]
	}
	url := first.Get("url").String()
	if url == "" {
		return "", fmt.Errorf("media upload returned no url: %w", domain.ErrUpstreamUnavailable)
	}
	return c.absoluteURL(url), nil
}
