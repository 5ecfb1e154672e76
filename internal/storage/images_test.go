package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/news", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := req.FormFile("image")
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })
	return header
}

func TestImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir, "http://localhost:3010/")

	name, err := store.Save(uploadedFile(t, "My Photo.JPG", "fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, ".jpg"), "extension is lowercased: %s", name)
	assert.NotContains(t, name, "My Photo", "original filename is not reused")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestImageStore_SaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store := NewImageStore(dir, "http://localhost:3010")

	_, err := store.Save(uploadedFile(t, "pic.png", "x"))
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestImageStore_SaveSameMillisecondGetsDistinctNames(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir, "http://localhost:3010")

	names := make(map[string]string)
	for i := 0; i < 5; i++ {
		content := fmt.Sprintf("image %d", i)
		name, err := store.Save(uploadedFile(t, "pic.jpg", content))
		require.NoError(t, err)
		require.NotContains(t, names, name, "filename reused")
		names[name] = content
	}

	for name, content := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	}
}

func TestImageStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir, "http://localhost:3010")

	name, err := store.Save(uploadedFile(t, "pic.png", "x"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestImageStore_PublicURL(t *testing.T) {
	store := NewImageStore(t.TempDir(), "http://91.108.113.110:3010/")

	url := store.PublicURL("1705233600000.jpg")
	assert.Equal(t, "http://91.108.113.110:3010/images/1705233600000.jpg", url)
}
