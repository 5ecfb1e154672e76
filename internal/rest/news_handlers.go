package rest

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/Eventhenoob/betay-server/internal/betay"
)

// Service is the slice of the domain manager the handlers need.
type Service interface {
	NewsPage(ctx context.Context, page, pageSize int) (betay.Page, error)
	NewsByID(ctx context.Context, newsID int) (*betay.News, error)
	CreateNews(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error)
	Subscribe(ctx context.Context, email string) error
	SendContactMail(ctx context.Context, name, email, message string) error
}

type NewsHandler struct {
	uc  Service
	log *slog.Logger
}

func NewNewsHandler(uc Service, log *slog.Logger) *NewsHandler {
	return &NewsHandler{
		uc:  uc,
		log: log,
	}
}

func (h *NewsHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Health handles GET /
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} rest.MessageResponse
// @Router / [get]
func (h *NewsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: "Hello from the server side!"})
}

// News handles GET /news
// @Summary List news
// @Description Retrieves one page of news sorted by createdAt DESC together with totalNews and totalPages. Missing or malformed page/limit values fall back to 1 and 10.
// @Tags news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.NewsListResponse
// @Failure 500 {object} rest.MessageResponse
// @Router /news [get]
func (h *NewsHandler) News(c echo.Context) error {
	var req NewsListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		req = NewsListRequest{}
	}

	// Each value is coerced independently; a non-numeric one degrades to
	// the manager's default without touching the other.
	pageNum, _ := strconv.Atoi(req.Page)
	limit, _ := strconv.Atoi(req.Limit)

	page, err := h.uc.NewsPage(c.Request().Context(), pageNum, limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "something went wrong")
	}

	return c.JSON(http.StatusOK, NewsListResponse{
		TotalPages: page.TotalPages,
		TotalNews:  page.TotalNews,
		Data:       NewNewsList(page.News),
	})
}

// NewsByID handles GET /news/:id
// @Summary Get news by ID
// @Description Retrieves a single news item by ID with full content
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} rest.NewsResponse
// @Failure 400,404,500 {object} rest.MessageResponse
// @Router /news/{id} [get]
func (h *NewsHandler) NewsByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	news, err := h.uc.NewsByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "something went wrong")
	}
	if news == nil {
		return c.JSON(http.StatusNotFound, MessageResponse{Message: "news not found"})
	}

	result := NewNews(*news)
	return c.JSON(http.StatusOK, NewsResponse{Data: &result})
}

// CreateNews handles POST /news
// @Summary Create a news article
// @Description Accepts a multipart form with title, createdBy, content, shortDescription, the shared key and an image file
// @Tags news
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param createdBy formData string true "Author"
// @Param shortDescription formData string true "Short description"
// @Param content formData string true "Content"
// @Param key formData string true "Shared secret"
// @Param image formData file true "Image file"
// @Success 201 {object} rest.MessageResponse
// @Failure 400,500 {object} rest.MessageResponse
// @Router /news [post]
func (h *NewsHandler) CreateNews(c echo.Context) error {
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	in := betay.NewsInput{
		Title:            c.FormValue("title"),
		CreatedBy:        c.FormValue("createdBy"),
		ShortDescription: c.FormValue("shortDescription"),
		Content:          c.FormValue("content"),
		Key:              c.FormValue("key"),
	}

	_, err = h.uc.CreateNews(c.Request().Context(), in, image)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, MessageResponse{Message: "news created successfully"})
	case isValidationError(err):
		return h.handleError(c, err, http.StatusBadRequest, validationMessage(err))
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "something went wrong")
	}
}
