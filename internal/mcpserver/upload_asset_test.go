package mcpserver

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
)

// Minimal valid sniff prefixes per container.
var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	mp4Bytes = []byte{0, 0, 0, 0x18, 'f', 't', 'y', 'p', 'm', 'p', '4', '2', 0, 0, 0, 0, 'm', 'p', '4', '2', 'i', 's', 'o', 'm'}
)

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func TestUploadAssetImage(t *testing.T) {
	srv, store := testServer(t)

	r := callTool(t, srv, "upload_asset", map[string]interface{}{
		"url":      dataURI("image/png", pngBytes),
		"filename": "logo.png",
	})
	if r.IsError {
		t.Fatalf("upload failed: %s", resultText(r))
	}

	var res uploadResult
	if err := json.Unmarshal([]byte(resultText(r)), &res); err != nil {
		t.Fatal(err)
	}
	if res.Kind != "image" || res.SavedPath != "/attachments/logo.png" {
		t.Errorf("result = %+v", res)
	}
	if res.MarkdownImage != "![logo.png](/attachments/logo.png)" {
		t.Errorf("markdownImage = %q", res.MarkdownImage)
	}

	if _, err := store.Read("attachments/logo.png"); err != nil {
		t.Errorf("uploaded file not stored: %v", err)
	}
}

func TestUploadAssetVideoReturnsGalleryItem(t *testing.T) {
	srv, store := testServer(t)

	r := callTool(t, srv, "upload_asset", map[string]interface{}{
		"url":      dataURI("video/mp4", mp4Bytes),
		"filename": "clip.mp4",
	})
	if r.IsError {
		t.Fatalf("video upload failed: %s", resultText(r))
	}

	var res uploadResult
	if err := json.Unmarshal([]byte(resultText(r)), &res); err != nil {
		t.Fatal(err)
	}
	if res.Kind != "video" {
		t.Errorf("kind = %q, want video", res.Kind)
	}
	if res.MarkdownImage != "" {
		t.Errorf("video upload produced markdown image %q", res.MarkdownImage)
	}
	if !strings.Contains(res.GalleryItem, `"type":"video"`) ||
		!strings.Contains(res.GalleryItem, `"src":"/attachments/clip.mp4"`) ||
		!strings.Contains(res.GalleryItem, `"id":"clip"`) {
		t.Errorf("galleryItem = %q", res.GalleryItem)
	}

	if _, err := store.Read("attachments/clip.mp4"); err != nil {
		t.Errorf("uploaded video not stored: %v", err)
	}
}

func TestUploadAssetRejectsContentMismatch(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "upload_asset", map[string]interface{}{
		"url":      dataURI("video/mp4", pngBytes),
		"filename": "clip.mp4",
	})
	if !r.IsError {
		t.Fatal("png bytes accepted as mp4")
	}
	if text := resultText(r); !strings.Contains(text, "does not match") {
		t.Errorf("error text = %q", text)
	}
}

func TestUploadAssetRejectsUnsupportedMIME(t *testing.T) {
	srv, _ := testServer(t)

	r := callTool(t, srv, "upload_asset", map[string]interface{}{
		"url": dataURI("text/plain", []byte("hello")),
	})
	if !r.IsError {
		t.Fatal("text/plain accepted")
	}
}

func TestUploadAssetRejectsDuplicate(t *testing.T) {
	srv, _ := testServer(t)

	args := map[string]interface{}{
		"url":      dataURI("image/png", pngBytes),
		"filename": "logo.png",
	}
	if r := callTool(t, srv, "upload_asset", args); r.IsError {
		t.Fatalf("first upload failed: %s", resultText(r))
	}
	r := callTool(t, srv, "upload_asset", args)
	if !r.IsError {
		t.Fatal("duplicate upload accepted")
	}
	if text := resultText(r); !strings.Contains(text, "already exists") {
		t.Errorf("error text = %q", text)
	}
}
