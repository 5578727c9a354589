package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/atsmatch/pkg/resume"
)

// Сообщения об ошибках загрузки, которые видит клиент.
const (
	msgNoFile       = "No resume file uploaded."
	msgInvalidType  = "Invalid file type. Only PDF, DOC, and DOCX files are allowed."
	msgNoJob        = "Job description is required."
	msgTooLargeTmpl = "File is too large. Maximum size is %dMB."
	msgStoreFailed  = "Failed to store uploaded file."
)

// uploadError — ошибка валидации, сообщение которой можно показать клиенту.
type uploadError struct{ msg string }

func (e *uploadError) Error() string { return e.msg }

// Uploads validates the resume form field and stages it as a temporary file.
type Uploads struct {
	Dir      string
	MaxBytes int64

	// saveFile подменяется в тестах; по умолчанию c.SaveFile.
	saveFile func(c *fiber.Ctx, fh *multipart.FileHeader, dst string) error
}

// check validates the "resume" form field without touching the disk.
func (u Uploads) check(c *fiber.Ctx) (*multipart.FileHeader, error) {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return nil, &uploadError{msg: msgNoFile}
	}
	if !resume.FormatFromName(fh.Filename).Supported() {
		return nil, &uploadError{msg: msgInvalidType}
	}
	if fh.Size > u.MaxBytes {
		return nil, &uploadError{msg: fmt.Sprintf(msgTooLargeTmpl, u.MaxBytes>>20)}
	}
	return fh, nil
}

// save кладёт файл во временный каталог под случайным именем.
// Удаление файла — забота вызывающего.
func (u Uploads) save(c *fiber.Ctx, fh *multipart.FileHeader) (resume.Upload, error) {
	if err := os.MkdirAll(u.Dir, 0o750); err != nil {
		return resume.Upload{}, fmt.Errorf("prepare upload dir: %w", err)
	}
	dst := filepath.Join(u.Dir, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	save := u.saveFile
	if save == nil {
		save = func(c *fiber.Ctx, fh *multipart.FileHeader, dst string) error { return c.SaveFile(fh, dst) }
	}
	if err := save(c, fh, dst); err != nil {
		// частично записанный файл не должен пережить запрос
		if rmErr := os.Remove(dst); rmErr != nil && !os.IsNotExist(rmErr) {
			err = errors.Join(err, rmErr)
		}
		return resume.Upload{}, fmt.Errorf("save upload: %w", err)
	}
	return resume.Upload{FileName: fh.Filename, Path: dst}, nil
}
