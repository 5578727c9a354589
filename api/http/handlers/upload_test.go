package handlers

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	diskFull := errors.New("no space left on device")
	u := Uploads{
		Dir:      dir,
		MaxBytes: 5 << 20,
		saveFile: func(_ *fiber.Ctx, _ *multipart.FileHeader, dst string) error {
			require.NoError(t, os.WriteFile(dst, []byte("%PDF-1.4 trunc"), 0o600))
			return diskFull
		},
	}

	_, err := u.save(nil, &multipart.FileHeader{Filename: "cv.pdf"})
	assert.ErrorIs(t, err, diskFull)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveKeepsFileOnSuccess(t *testing.T) {
	dir := t.TempDir()
	u := Uploads{
		Dir:      dir,
		MaxBytes: 5 << 20,
		saveFile: func(_ *fiber.Ctx, _ *multipart.FileHeader, dst string) error {
			return os.WriteFile(dst, []byte("payload"), 0o600)
		},
	}

	up, err := u.save(nil, &multipart.FileHeader{Filename: "CV.DOCX"})
	require.NoError(t, err)
	assert.Equal(t, "CV.DOCX", up.FileName)
	assert.Equal(t, dir, filepath.Dir(up.Path))
	assert.Equal(t, ".docx", filepath.Ext(up.Path))
	assert.FileExists(t, up.Path)
}
