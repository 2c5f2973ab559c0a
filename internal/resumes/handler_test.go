package resumes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Rithb898/AI-Application-Assistant/internal/bootstrap"
	"github.com/Rithb898/AI-Application-Assistant/internal/llm"
	"github.com/Rithb898/AI-Application-Assistant/internal/shared/config"
)

type fixedClient struct {
	raw json.RawMessage
	err error
}

func (f *fixedClient) GenerateObject(ctx context.Context, req llm.Request) (json.RawMessage, error) {
	return f.raw, f.err
}

func newTestRouter(t *testing.T, client llm.GeneratorClient) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		ParsePrimary:    "parse-primary",
		ParseFallback:   "parse-fallback",
	}
	app, err := bootstrap.Build(cfg, client)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postResume(t *testing.T, router *gin.Engine, fileName, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="resume"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Error
}

func TestParseResumeNoFile(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "No file uploaded" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestParseResumeRejectsNonPDF(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	resp := postResume(t, router, "resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", []byte("not a pdf"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Invalid file type. Please upload a PDF." {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestParseResumeSizeBoundary(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	// One byte over the limit is rejected.
	over := pdfPayload((10 << 20) + 1)
	resp := postResume(t, router, "resume.pdf", "application/pdf", over)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}

	// Exactly at the limit passes the size check; the junk payload then fails
	// extraction rather than being rejected for size.
	exact := pdfPayload(10 << 20)
	resp = postResume(t, router, "resume.pdf", "application/pdf", exact)
	if resp.Code == http.StatusRequestEntityTooLarge {
		t.Fatalf("file of exactly the maximum size must not be rejected for size")
	}
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unparseable payload, got %d", resp.Code)
	}
}

func TestParseResumeExtractionFailure(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	resp := postResume(t, router, "resume.pdf", "application/pdf", []byte("%PDF-1.4 junk bytes"))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "PDF parsing failed" {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

func TestParseResumeRejectsSpoofedContentType(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	// Declared application/pdf but the bytes are not a PDF.
	resp := postResume(t, router, "resume.pdf", "application/pdf", []byte("plain text"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if msg := decodeError(t, resp); msg != "Invalid file type. Please upload a PDF." {
		t.Fatalf("unexpected error message: %q", msg)
	}
}

// pdfPayload builds a payload of exactly n bytes starting with the PDF magic.
func pdfPayload(n int) []byte {
	buf := make([]byte, n)
	copy(buf, "%PDF-1.4\n")
	for i := len("%PDF-1.4\n"); i < n; i++ {
		buf[i] = 'a'
	}
	return buf
}

func TestResumeCurrentRequiresIdentity(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for anonymous read, got %d", resp.Code)
	}

	reqPut := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/current", bytes.NewReader([]byte(`{}`)))
	reqPut.Header.Set("Content-Type", "application/json")
	respPut := httptest.NewRecorder()
	router.ServeHTTP(respPut, reqPut)
	if respPut.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous write, got %d", respPut.Code)
	}
}

func TestResumeCurrentRoundTrip(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	profile := `{"fullName":"Jane Doe","skills":{"technicalSkills":["Go"],"softSkills":[]}}`

	reqPut := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/current", bytes.NewReader([]byte(profile)))
	reqPut.Header.Set("Content-Type", "application/json")
	reqPut.Header.Set("X-Guest-Id", "guest-1")
	respPut := httptest.NewRecorder()
	router.ServeHTTP(respPut, reqPut)
	if respPut.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", respPut.Code, respPut.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	reqGet.Header.Set("X-Guest-Id", "guest-1")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
	// Profile bytes come back exactly as stored.
	if respGet.Body.String() != profile {
		t.Fatalf("profile not byte-preserved:\n got: %s\nwant: %s", respGet.Body.String(), profile)
	}

	// A different guest sees nothing.
	reqOther := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/current", nil)
	reqOther.Header.Set("X-Guest-Id", "guest-2")
	respOther := httptest.NewRecorder()
	router.ServeHTTP(respOther, reqOther)
	if respOther.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other guest, got %d", respOther.Code)
	}
}

func TestResumePutRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter(t, &fixedClient{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/current", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "guest-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
