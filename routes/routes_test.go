package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shopadmin/catalog"
	"shopadmin/db"
	"shopadmin/media"
	"shopadmin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type stubUploader struct {
	calls           []string
	transformations []string
	fail            map[string]error
}

func (s *stubUploader) Upload(_ context.Context, encoded string, opts ...media.UploadOption) (string, error) {
	s.calls = append(s.calls, encoded)
	s.transformations = append(s.transformations, media.Options(opts...).Transformation)
	if err, ok := s.fail[encoded]; ok {
		return "", err
	}
	return "https://img.test/" + encoded, nil
}

type testApp struct {
	app      *fiber.App
	db       *gorm.DB
	uploader *stubUploader
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(conn))

	up := &stubUploader{fail: map[string]error{}}
	app := fiber.New()
	app.Use(RequestLogger(zerolog.Nop()))
	SetupRoutes(app, catalog.New(conn, up, nil, zerolog.Nop()), up, nil)
	return &testApp{app: app, db: conn, uploader: up}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (a *testApp) do(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func formRequest(method, target string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestCategoryEndpoints(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, formRequest(http.MethodPost, "/api/categories", url.Values{
		"name":        {"Shoes"},
		"imageBase64": {"b64"},
	}))
	require.Equal(t, http.StatusOK, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Category created successfully.", env.Message)
	assert.Equal(t, "null", string(env.Data))

	status, env = a.do(t, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	require.Equal(t, http.StatusOK, status)
	var categories []models.Category
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Shoes", categories[0].Name)
	assert.Equal(t, "https://img.test/b64", categories[0].Image)

	status, env = a.do(t, httptest.NewRequest(http.MethodGet, "/api/categories/1", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Category retrieved successfully.", env.Message)

	status, env = a.do(t, formRequest(http.MethodPut, "/api/categories/1", url.Values{"name": {"Boots"}}))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Category updated successfully.", env.Message)

	status, _ = a.do(t, httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil))
	assert.Equal(t, http.StatusOK, status)

	status, env = a.do(t, httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Category not found.", env.Message)
}

func TestCategoryCreateValidation(t *testing.T) {
	a := newTestApp(t)

	status, env := a.do(t, formRequest(http.MethodPost, "/api/categories", url.Values{"imageBase64": {"b64"}}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, env.Success)
	assert.Equal(t, "name is required.", env.Message)
	assert.Empty(t, a.uploader.calls)
}

func TestUploadErrorsMapTo500(t *testing.T) {
	a := newTestApp(t)
	a.uploader.fail["slow"] = &media.UploadError{Timeout: true}
	a.uploader.fail["bad"] = &media.UploadError{Message: "Invalid image file"}

	status, env := a.do(t, formRequest(http.MethodPost, "/api/posters", url.Values{
		"posterName":  {"Sale"},
		"imageBase64": {"slow"},
	}))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Image upload timed out. Please try again.", env.Message)

	status, env = a.do(t, formRequest(http.MethodPost, "/api/posters", url.Values{
		"posterName":  {"Sale"},
		"imageBase64": {"bad"},
	}))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Image upload failed: Invalid image file", env.Message)

	var n int64
	require.NoError(t, a.db.Model(&models.Poster{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestInvalidIDIsNotFound(t *testing.T) {
	a := newTestApp(t)

	for _, target := range []string{"/api/categories/abc", "/api/posters/0", "/api/products/-3", "/api/brands/x"} {
		status, env := a.do(t, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, status, target)
		assert.False(t, env.Success)
	}
}

func TestCategoryDeleteConflict(t *testing.T) {
	a := newTestApp(t)
	c := models.Category{Name: "Shoes"}
	require.NoError(t, a.db.Create(&c).Error)

	status, _ := a.do(t, jsonRequest(http.MethodPost, "/api/subCategories", map[string]interface{}{
		"name":       "Sneakers",
		"categoryId": c.ID,
	}))
	require.Equal(t, http.StatusOK, status)

	status, env := a.do(t, httptest.NewRequest(http.MethodDelete, "/api/categories/1", nil))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Cannot delete category. Subcategories are referencing it.", env.Message)

	status, env = a.do(t, httptest.NewRequest(http.MethodGet, "/api/subCategories", nil))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Subcategories retrieved successfully.", env.Message)
	var subs []models.SubCategory
	require.NoError(t, json.Unmarshal(env.Data, &subs))
	require.Len(t, subs, 1)
	require.NotNil(t, subs[0].Category)
	assert.Equal(t, "Shoes", subs[0].Category.Name)
}

func TestSubCategoryCreateIgnoresNestedCategory(t *testing.T) {
	a := newTestApp(t)
	c := models.Category{Name: "Shoes", Image: "https://img.test/shoes"}
	require.NoError(t, a.db.Create(&c).Error)

	status, env := a.do(t, jsonRequest(http.MethodPost, "/api/subCategories", map[string]interface{}{
		"name":       "Sneakers",
		"categoryId": c.ID,
		"category":   map[string]interface{}{"name": "X"},
	}))
	require.Equal(t, http.StatusOK, status, env.Message)

	var categories []models.Category
	require.NoError(t, a.db.Find(&categories).Error)
	require.Len(t, categories, 1)
	assert.Equal(t, "Shoes", categories[0].Name)

	var sub models.SubCategory
	require.NoError(t, a.db.First(&sub).Error)
	assert.Equal(t, c.ID, sub.CategoryID)
}

func TestProductEndpoints(t *testing.T) {
	a := newTestApp(t)
	c := models.Category{Name: "Shoes"}
	require.NoError(t, a.db.Create(&c).Error)
	s := models.SubCategory{Name: "Sneakers", CategoryID: c.ID}
	require.NoError(t, a.db.Create(&s).Error)

	status, env := a.do(t, formRequest(http.MethodPost, "/api/products", url.Values{
		"name":             {"Runner"},
		"quantity":         {"3"},
		"price":            {"120"},
		"proCategoryId":    {"1"},
		"proSubCategoryId": {"1"},
		"imageBase641":     {"one"},
	}))
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "Product created successfully.", env.Message)

	status, env = a.do(t, formRequest(http.MethodPut, "/api/products/1", url.Values{
		"price":        {"50"},
		"imageBase642": {"two"},
	}))
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = a.do(t, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, status)
	var products []struct {
		Name          string                `json:"name"`
		Quantity      int                   `json:"quantity"`
		Price         float64               `json:"price"`
		ProCategoryID models.RefSummary     `json:"proCategoryId"`
		ProBrandID    *models.RefSummary    `json:"proBrandId"`
		Images        []models.ProductImage `json:"images"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "Runner", p.Name)
	assert.Equal(t, 3, p.Quantity)
	assert.Equal(t, 50.0, p.Price)
	assert.Equal(t, models.RefSummary{ID: c.ID, Name: "Shoes"}, p.ProCategoryID)
	assert.Nil(t, p.ProBrandID)
	require.Len(t, p.Images, 2)
	assert.Equal(t, 1, p.Images[0].Slot)
	assert.Equal(t, "https://img.test/one", p.Images[0].URL)
	assert.Equal(t, 2, p.Images[1].Slot)

	status, env = a.do(t, formRequest(http.MethodPost, "/api/products", url.Values{
		"name":     {"Runner"},
		"quantity": {"3"},
	}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "price is required.", env.Message)

	status, _ = a.do(t, httptest.NewRequest(http.MethodDelete, "/api/products/1", nil))
	assert.Equal(t, http.StatusOK, status)
	status, _ = a.do(t, httptest.NewRequest(http.MethodGet, "/api/products/1", nil))
	assert.Equal(t, http.StatusNotFound, status)
}

func multipartRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestUploadEndpoint(t *testing.T) {
	a := newTestApp(t)
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

	status, env := a.do(t, multipartRequest(t, "img", "logo.png", png))
	require.Equal(t, http.StatusOK, status, env.Message)
	var data struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, a.uploader.calls, 1)
	assert.True(t, strings.HasPrefix(a.uploader.calls[0], "data:image/png;base64,"))
	assert.Equal(t, "https://img.test/"+a.uploader.calls[0], data.URL)
	assert.Equal(t, []string{media.ThumbnailTransformation}, a.uploader.transformations)

	status, env = a.do(t, multipartRequest(t, "img", "anim.gif", []byte("GIF89a....")))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Only .jpeg, .jpg, .png files are allowed!", env.Message)

	status, _ = a.do(t, multipartRequest(t, "other", "logo.png", png))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Len(t, a.uploader.calls, 1)
}

func TestRequestIDHeader(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/api/posters", nil), -1)
	require.NoError(t, err)
	_, err = uuid.Parse(resp.Header.Get(fiber.HeaderXRequestID))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/posters", nil)
	req.Header.Set(fiber.HeaderXRequestID, "abc-123")
	resp, err = a.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(fiber.HeaderXRequestID))
}
