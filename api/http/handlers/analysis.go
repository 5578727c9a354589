package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/atsmatch/api/http/presenter"
	"github.com/artem13815/atsmatch/pkg/analysis"
	"github.com/artem13815/atsmatch/pkg/logger"
)

const (
	msgInsufficientText = "We couldn't extract sufficient text from your resume file. Please try uploading a different file or format."
	msgAnalysisFailed   = "Error analyzing resume. Please try again."
	msgInvalidID        = "Invalid ID format"
	msgNotFound         = "Analysis not found"
	msgBadPage          = "Invalid pagination parameters"
	msgBadForm          = "Invalid form data."
)

type AnalysisHandler struct {
	uc       analysis.UseCase
	uploads  Uploads
	validate *validator.Validate
}

func NewAnalysisHandler(uc analysis.UseCase, uploads Uploads) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, uploads: uploads, validate: validator.New()}
}

type analyzeForm struct {
	JobDescription string `form:"jobDescription" validate:"required"`
}

// listQuery — пагинация истории; Limit = 0 означает "все записи".
type listQuery struct {
	Limit  int `query:"limit" validate:"gte=0,lte=200"`
	Offset int `query:"offset" validate:"gte=0"`
}

// Analyze сравнивает загруженное резюме с описанием вакансии и сохраняет отчёт.
// @Summary Анализ резюме относительно вакансии
// @Description Извлекает текст из резюме, считает совпадение ключевых слов, запрашивает оценку LLM (при недоступности — отчёт по умолчанию) и сохраняет результат.
// @Tags    Анализ
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Файл резюме (PDF, DOC или DOCX, до 5MB)"
// @Param   jobDescription formData string true "Описание вакансии"
// @Success 200 {object} analysis.Report
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации или недостаточно текста"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	ctx := c.UserContext()

	fh, err := h.uploads.check(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	var form analyzeForm
	if err := c.BodyParser(&form); err != nil {
		logger.Ctx(ctx).Warn().Err(err).Msg("parse analyze form")
		return presenter.Error(c, http.StatusBadRequest, msgBadForm)
	}
	form.JobDescription = strings.TrimSpace(form.JobDescription)
	if err := h.validate.Struct(form); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgNoJob)
	}

	up, err := h.uploads.save(c, fh)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("save upload")
		return presenter.Error(c, http.StatusInternalServerError, msgStoreFailed)
	}

	res, err := h.uc.Analyze(ctx, analysis.Submission{
		FileName:       up.FileName,
		FilePath:       up.Path,
		JobDescription: form.JobDescription,
	})
	switch {
	case err == nil:
		return presenter.JSON(c, http.StatusOK, res.Record.Result)
	case errors.Is(err, analysis.ErrEmptyJobDescription):
		return presenter.Error(c, http.StatusBadRequest, msgNoJob)
	case errors.Is(err, analysis.ErrInsufficientText):
		return presenter.Error(c, http.StatusBadRequest, msgInsufficientText)
	default:
		return presenter.Error(c, http.StatusInternalServerError, msgAnalysisFailed)
	}
}

// List возвращает сохранённые анализы, новые первыми.
// @Summary Список анализов
// @Tags    Анализ
// @Produce json
// @Param   limit  query int false "Лимит (1..200), по умолчанию все"
// @Param   offset query int false "Смещение"
// @Success 200 {array} analysis.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /analyses [get]
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	var q listQuery
	if err := c.QueryParser(&q); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgBadPage)
	}
	if err := h.validate.Struct(q); err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgBadPage)
	}
	items, err := h.uc.List(c.UserContext(), q.Limit, q.Offset)
	if err != nil {
		logger.Ctx(c.UserContext()).Error().Err(err).Msg("list analyses")
		return presenter.Error(c, http.StatusInternalServerError, "Failed to fetch analyses")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get возвращает анализ по числовому id.
// @Summary Получить анализ
// @Tags    Анализ
// @Produce json
// @Param   id path int true "ID анализа"
// @Success 200 {object} analysis.Record
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses/{id} [get]
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, msgInvalidID)
	}
	rec, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, analysis.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, msgNotFound)
		}
		logger.Ctx(c.UserContext()).Error().Err(err).Int64("id", id).Msg("get analysis")
		return presenter.Error(c, http.StatusInternalServerError, "Failed to fetch analysis")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}
