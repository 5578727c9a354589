package resume

import (
	"context"
	"os"

	"github.com/artem13815/atsmatch/pkg/logger"
)

// Upload — загруженный файл, уже сохранённый во временное хранилище.
type Upload struct {
	FileName string
	Path     string
}

// ExtractionService describes the use case behind the standalone extract endpoint.
type ExtractionService interface {
	Extract(ctx context.Context, up Upload) Extraction
}

type extractionService struct {
	parser *Parser
}

// NewExtractionService creates the default implementation.
func NewExtractionService(parser *Parser) ExtractionService {
	if parser == nil {
		parser = defaultParser
	}
	return &extractionService{parser: parser}
}

// Extract reads the upload and removes its temporary file on every exit path.
func (s *extractionService) Extract(ctx context.Context, up Upload) Extraction {
	defer RemoveTemp(ctx, up.Path)

	ext := s.parser.ExtractFile(up.Path, FormatFromName(up.FileName))
	if ext.Status != StatusOK {
		logger.Ctx(ctx).Warn().
			Err(ext.Err).
			Str("file", up.FileName).
			Str("format", string(ext.Format)).
			Str("status", string(ext.Status)).
			Int("text_len", len(ext.Text)).
			Msg("resume extraction degraded")
	}
	return ext
}

// RemoveTemp удаляет временный файл загрузки; ошибка только логируется.
func RemoveTemp(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("failed to delete temporary upload")
	}
}
