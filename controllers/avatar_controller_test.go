package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func multipartFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/profile/avatar", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("Failed to parse multipart form: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestReadUploadedImage(t *testing.T) {
	// A PNG signature followed by filler well past any sniffing window;
	// every byte must come back, not just the first buffered chunk.
	content := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0xAB}, 64*1024)...)
	header := multipartFileHeader(t, "avatar.png", content)

	buf, fileType, err := readUploadedImage(header)
	assert.NoError(t, err)
	assert.Equal(t, "image/png", fileType)
	assert.Equal(t, content, buf)
}

func TestReadUploadedImageRejectsNonImage(t *testing.T) {
	header := multipartFileHeader(t, "notes.txt", []byte("just some text"))

	_, _, err := readUploadedImage(header)
	assert.ErrorIs(t, err, errAvatarNotImage)
}

func TestReadUploadedImageRejectsOversize(t *testing.T) {
	content := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 600_000)...)
	header := multipartFileHeader(t, "huge.png", content)

	_, _, err := readUploadedImage(header)
	assert.ErrorIs(t, err, errAvatarTooLarge)
}
