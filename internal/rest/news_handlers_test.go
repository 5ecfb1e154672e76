package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eventhenoob/betay-server/internal/betay"
	"github.com/Eventhenoob/betay-server/internal/db"
)

// stubService is a manual stub implementation of Service
type stubService struct {
	newsPageFunc        func(ctx context.Context, page, pageSize int) (betay.Page, error)
	newsByIDFunc        func(ctx context.Context, newsID int) (*betay.News, error)
	createNewsFunc      func(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error)
	subscribeFunc       func(ctx context.Context, email string) error
	sendContactMailFunc func(ctx context.Context, name, email, message string) error
}

func (s *stubService) NewsPage(ctx context.Context, page, pageSize int) (betay.Page, error) {
	if s.newsPageFunc != nil {
		return s.newsPageFunc(ctx, page, pageSize)
	}
	return betay.Page{}, nil
}

func (s *stubService) NewsByID(ctx context.Context, newsID int) (*betay.News, error) {
	if s.newsByIDFunc != nil {
		return s.newsByIDFunc(ctx, newsID)
	}
	return nil, nil
}

func (s *stubService) CreateNews(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error) {
	if s.createNewsFunc != nil {
		return s.createNewsFunc(ctx, in, image)
	}
	return nil, nil
}

func (s *stubService) Subscribe(ctx context.Context, email string) error {
	if s.subscribeFunc != nil {
		return s.subscribeFunc(ctx, email)
	}
	return nil
}

func (s *stubService) SendContactMail(ctx context.Context, name, email, message string) error {
	if s.sendContactMailFunc != nil {
		return s.sendContactMailFunc(ctx, name, email, message)
	}
	return nil
}

func newTestHandler(uc Service) *NewsHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewNewsHandler(uc, logger)
}

func serve(t *testing.T, uc Service, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := newTestHandler(uc).RegisterRoutes(t.TempDir())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sampleNews(id int) betay.News {
	return betay.News{News: db.News{
		ID:               id,
		Title:            "AI Breakthrough in Machine Learning",
		CreatedBy:        "John Doe",
		Image:            "http://localhost:3010/images/1705233600000.jpg",
		ShortDescription: "New models show impressive results.",
		Content:          "Artificial intelligence continues to evolve rapidly.",
		CreatedAt:        time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC),
	}}
}

func TestNewsHandler_Health(t *testing.T) {
	rec := serve(t, &stubService{}, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
}

func TestNewsHandler_News(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &stubService{
			newsPageFunc: func(ctx context.Context, page, pageSize int) (betay.Page, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, pageSize)
				return betay.Page{
					News:       []betay.News{sampleNews(6), sampleNews(5)},
					TotalNews:  12,
					TotalPages: 3,
				}, nil
			},
		}

		rec := serve(t, uc, httptest.NewRequest(http.MethodGet, "/news?page=2&limit=5", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp NewsListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 12, resp.TotalNews)
		assert.Equal(t, 3, resp.TotalPages)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, 6, resp.Data[0].ID)
		assert.Equal(t, "John Doe", resp.Data[0].CreatedBy)
	})

	t.Run("GarbageQueryFallsBackToDefaults", func(t *testing.T) {
		var gotPage, gotSize int
		uc := &stubService{
			newsPageFunc: func(ctx context.Context, page, pageSize int) (betay.Page, error) {
				gotPage, gotSize = page, pageSize
				return betay.Page{}, nil
			},
		}

		rec := serve(t, uc, httptest.NewRequest(http.MethodGet, "/news?page=abc&limit=xyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		// the manager clamps zero values to its defaults
		assert.Equal(t, 0, gotPage)
		assert.Equal(t, 0, gotSize)
	})

	t.Run("GarbagePageKeepsValidLimit", func(t *testing.T) {
		var gotPage, gotSize int
		uc := &stubService{
			newsPageFunc: func(ctx context.Context, page, pageSize int) (betay.Page, error) {
				gotPage, gotSize = page, pageSize
				return betay.Page{}, nil
			},
		}

		rec := serve(t, uc, httptest.NewRequest(http.MethodGet, "/news?page=abc&limit=5", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, gotPage)
		assert.Equal(t, 5, gotSize)

		rec = serve(t, uc, httptest.NewRequest(http.MethodGet, "/news?page=3&limit=xyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, gotPage)
		assert.Equal(t, 0, gotSize)
	})

	t.Run("StoreFaultIsGeneric", func(t *testing.T) {
		uc := &stubService{
			newsPageFunc: func(ctx context.Context, page, pageSize int) (betay.Page, error) {
				return betay.Page{}, assert.AnError
			},
		}

		rec := serve(t, uc, httptest.NewRequest(http.MethodGet, "/news", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "something went wrong", resp.Message)
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestNewsHandler_NewsByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		uc := &stubService{
			newsByIDFunc: func(ctx context.Context, newsID int) (*betay.News, error) {
				news := sampleNews(newsID)
				return &news, nil
			},
		}

		rec := serve(t, uc, httptest.NewRequest(http.MethodGet, "/news/7", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp NewsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Data)
		assert.Equal(t, 7, resp.Data.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := serve(t, &stubService{}, httptest.NewRequest(http.MethodGet, "/news/404", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("MalformedID", func(t *testing.T) {
		rec := serve(t, &stubService{}, httptest.NewRequest(http.MethodGet, "/news/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func multipartBody(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "pic.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestNewsHandler_CreateNews(t *testing.T) {
	fields := map[string]string{
		"title":            "AI Breakthrough in Machine Learning",
		"createdBy":        "John Doe",
		"shortDescription": "New models show impressive results.",
		"content":          "Artificial intelligence continues to evolve rapidly.",
		"key":              "secret-key",
	}

	t.Run("Success", func(t *testing.T) {
		var gotIn betay.NewsInput
		var gotImage *multipart.FileHeader
		uc := &stubService{
			createNewsFunc: func(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error) {
				gotIn, gotImage = in, image
				news := sampleNews(1)
				return &news, nil
			},
		}

		body, contentType := multipartBody(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/news", body)
		req.Header.Set("Content-Type", contentType)

		rec := serve(t, uc, req)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "John Doe", gotIn.CreatedBy)
		assert.Equal(t, "secret-key", gotIn.Key)
		require.NotNil(t, gotImage)
		assert.Equal(t, "pic.jpg", gotImage.Filename)
	})

	t.Run("MissingField", func(t *testing.T) {
		uc := &stubService{
			createNewsFunc: func(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error) {
				return nil, betay.ErrMissingFields
			},
		}

		incomplete := map[string]string{"title": "only a title"}
		body, contentType := multipartBody(t, incomplete, false)
		req := httptest.NewRequest(http.MethodPost, "/news", body)
		req.Header.Set("Content-Type", contentType)

		rec := serve(t, uc, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "please provide all the required fields", resp.Message)
	})

	t.Run("WrongKey", func(t *testing.T) {
		uc := &stubService{
			createNewsFunc: func(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error) {
				return nil, betay.ErrInvalidKey
			},
		}

		body, contentType := multipartBody(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/news", body)
		req.Header.Set("Content-Type", contentType)

		rec := serve(t, uc, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("StoreFaultIsGeneric", func(t *testing.T) {
		uc := &stubService{
			createNewsFunc: func(ctx context.Context, in betay.NewsInput, image *multipart.FileHeader) (*betay.News, error) {
				return nil, assert.AnError
			},
		}

		body, contentType := multipartBody(t, fields, true)
		req := httptest.NewRequest(http.MethodPost, "/news", body)
		req.Header.Set("Content-Type", contentType)

		rec := serve(t, uc, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestNewsHandler_Subscribe(t *testing.T) {
	post := func(t *testing.T, uc Service, payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/newsLetter", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		return serve(t, uc, req)
	}

	t.Run("Success", func(t *testing.T) {
		var gotEmail string
		uc := &stubService{
			subscribeFunc: func(ctx context.Context, email string) error {
				gotEmail = email
				return nil
			},
		}

		rec := post(t, uc, `{"email":"reader@example.com"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "reader@example.com", gotEmail)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		uc := &stubService{
			subscribeFunc: func(ctx context.Context, email string) error {
				return betay.ErrInvalidEmail
			},
		}

		rec := post(t, uc, `{"email":"not-an-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid email provided", resp.Message)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		uc := &stubService{
			subscribeFunc: func(ctx context.Context, email string) error {
				return betay.ErrEmailExists
			},
		}

		rec := post(t, uc, `{"email":"reader@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "email already exists", resp.Message)
	})

	t.Run("StoreFaultIsGeneric", func(t *testing.T) {
		uc := &stubService{
			subscribeFunc: func(ctx context.Context, email string) error {
				return assert.AnError
			},
		}

		rec := post(t, uc, `{"email":"reader@example.com"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestNewsHandler_ContactMail(t *testing.T) {
	post := func(t *testing.T, uc Service, payload string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/mail", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		return serve(t, uc, req)
	}

	t.Run("Success", func(t *testing.T) {
		var got [3]string
		uc := &stubService{
			sendContactMailFunc: func(ctx context.Context, name, email, message string) error {
				got = [3]string{name, email, message}
				return nil
			},
		}

		rec := post(t, uc, `{"name":"John","email":"john@example.com","message":"Hello"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, [3]string{"John", "john@example.com", "Hello"}, got)
	})

	t.Run("MissingFields", func(t *testing.T) {
		uc := &stubService{
			sendContactMailFunc: func(ctx context.Context, name, email, message string) error {
				return betay.ErrMissingFields
			},
		}

		rec := post(t, uc, `{"name":"John"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("TransportFaultIsGeneric", func(t *testing.T) {
		uc := &stubService{
			sendContactMailFunc: func(ctx context.Context, name, email, message string) error {
				return assert.AnError
			},
		}

		rec := post(t, uc, `{"name":"John","email":"john@example.com","message":"Hello"}`)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

