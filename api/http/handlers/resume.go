package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/atsmatch/api/http/presenter"
	"github.com/artem13815/atsmatch/pkg/logger"
	"github.com/artem13815/atsmatch/pkg/resume"
)

type ResumeHandler struct {
	svc     resume.ExtractionService
	uploads Uploads
}

func NewResumeHandler(svc resume.ExtractionService, uploads Uploads) *ResumeHandler {
	return &ResumeHandler{svc: svc, uploads: uploads}
}

// ExtractResponse — текст, извлечённый из загруженного файла.
type ExtractResponse struct {
	Filename string        `json:"filename"`
	Format   resume.Format `json:"format"`
	Status   resume.Status `json:"status"`
	Text     string        `json:"text"`
}

// Extract извлекает текст из загруженного резюме без анализа и сохранения.
// @Summary Извлечь текст из резюме
// @Description Принимает PDF, DOC или DOCX и возвращает извлечённый текст и его статус (ok, low_confidence, degraded, unusable).
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Файл резюме (PDF, DOC или DOCX, до 5MB)"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации файла"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/extract [post]
func (h *ResumeHandler) Extract(c *fiber.Ctx) error {
	fh, err := h.uploads.check(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	up, err := h.uploads.save(c, fh)
	if err != nil {
		logger.Ctx(c.UserContext()).Error().Err(err).Msg("save upload")
		return presenter.Error(c, http.StatusInternalServerError, msgStoreFailed)
	}

	ext := h.svc.Extract(c.UserContext(), up)
	return presenter.JSON(c, http.StatusOK, ExtractResponse{
		Filename: up.FileName,
		Format:   ext.Format,
		Status:   ext.Status,
		Text:     ext.Text,
	})
}
