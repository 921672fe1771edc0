package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/config"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/service"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{
			MaxUploadSize:  10 * 1024 * 1024,
			AllowedFormats: []string{"jpeg", "png", "webp"},
			HistoryLimit:   50,
		},
		Forensics: config.ForensicsConfig{
			ExtractorTimeout:   500 * time.Millisecond,
			EmptyTagsBonus:     10,
			LowNoiseBonus:      30,
			NoiseStdThreshold:  5.0,
			FlatnessBonus:      10,
			FlatnessThreshold:  2.0,
			SmallImageBonus:    10,
			SmallImageMaxBytes: 50 * 1024,
			DecisionThreshold:  40,
		},
	}

	h := NewHandler(service.NewAnalysisService(nil, cfg, zap.NewNop()), zap.NewNop())

	router := gin.New()
	router.POST("/api/analyze", h.AnalyzeImage)
	router.GET("/api/history", h.GetHistory)
	router.GET("/health", h.HealthCheck)
	return router
}

func multipartUpload(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func greyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := testRouter(t)

	body, contentType := multipartUpload(t, "grey.png", greyPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Result     string   `json:"result"`
		Confidence int      `json:"confidence"`
		Details    []string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Result != "AI-generated" {
		t.Errorf("result = %q, want AI-generated", payload.Result)
	}
	if payload.Confidence != 50 {
		t.Errorf("confidence = %d, want 50", payload.Confidence)
	}
	if len(payload.Details) == 0 {
		t.Error("details empty, want explanation lines")
	}
}

func TestAnalyzeEndpointErrorMapping(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		name       string
		filename   string
		data       []byte
		wantStatus int
	}{
		{"unsupported format", "note.txt", []byte("plain text"), http.StatusUnsupportedMediaType},
		{"truncated jpeg", "cut.jpg", []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, tt.filename, tt.data)
			req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestAnalyzeEndpointMissingFile(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHistoryEndpointWithoutStore(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); body != "[]" {
		t.Errorf("body = %s, want an empty JSON array", body)
	}
}

func TestHistoryEndpointRejectsBadLimit(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/history?limit=nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
