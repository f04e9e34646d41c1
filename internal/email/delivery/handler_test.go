package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetsum-backend/internal/email/domain"
)

type fakeUsecase struct {
	outcome    domain.EmailOutcome
	gotTo      []string
	gotSubject string
	gotBody    string
	called     bool
}

func (f *fakeUsecase) Send(ctx context.Context, to []string, subject, body string) domain.EmailOutcome {
	f.called = true
	f.gotTo = to
	f.gotSubject = subject
	f.gotBody = body
	return f.outcome
}

func newRouter(uc *fakeUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEmailHandler(uc, 5*time.Second)
	r.POST("/api/send-email", h.SendEmail)
	return r
}

func doPost(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/send-email", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type sendResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Ok      *bool  `json:"ok"`
}

func TestSendEmailSuccess(t *testing.T) {
	uc := &fakeUsecase{outcome: domain.EmailOutcome{Success: true}}
	r := newRouter(uc)

	w := doPost(t, r, `{"to":["a@x.com","b@x.com"],"subject":"Notes","body":"Hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp sendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email sent successfully", resp.Message)
	require.NotNil(t, resp.Ok)
	assert.True(t, *resp.Ok)
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, uc.gotTo)
	assert.Equal(t, "Notes", uc.gotSubject)
}

func TestSendEmailCommaStringAndDefaults(t *testing.T) {
	uc := &fakeUsecase{outcome: domain.EmailOutcome{Success: true}}
	r := newRouter(uc)

	w := doPost(t, r, `{"to":"a@x.com, , b@x.com","subject":"","body":"Hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, uc.gotTo)
	assert.Equal(t, "Meeting Summary", uc.gotSubject)
}

func TestSendEmailPartialFailureStillOK(t *testing.T) {
	uc := &fakeUsecase{outcome: domain.EmailOutcome{
		Success:          true,
		FailedRecipients: []string{"b@x.com", "d@x.com"},
	}}
	r := newRouter(uc)

	w := doPost(t, r, `{"to":["a@x.com","b@x.com","c@x.com","d@x.com","e@x.com"],"body":"Hi"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp sendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Ok)
	assert.True(t, *resp.Ok)
	assert.Equal(t, "Email sent successfully. Failed to send to: b@x.com, d@x.com", resp.Message)
}

func TestSendEmailSystemicFailure(t *testing.T) {
	uc := &fakeUsecase{outcome: domain.EmailOutcome{
		Success: false,
		Err:     "Email transport unavailable: oauth2: invalid_grant",
	}}
	r := newRouter(uc)

	w := doPost(t, r, `{"to":["a@x.com"],"body":"Hi"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp sendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Ok)
	assert.False(t, *resp.Ok)
	assert.Contains(t, resp.Error, "Email transport unavailable")
}

func TestSendEmailValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no recipients", `{"to":[],"body":"Hi"}`},
		{"empty comma string", `{"to":" , ,","body":"Hi"}`},
		{"too many recipients", `{"to":[` + manyRecipients(21) + `],"body":"Hi"}`},
		{"bad address", `{"to":["not-an-email"],"body":"Hi"}`},
		{"subject too long", `{"to":["a@x.com"],"subject":"` + strings.Repeat("s", 201) + `","body":"Hi"}`},
		{"body too long", `{"to":["a@x.com"],"body":"` + strings.Repeat("b", 50001) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUsecase{outcome: domain.EmailOutcome{Success: true}}
			r := newRouter(uc)

			w := doPost(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, uc.called, "transport must not be reached on validation failure")
		})
	}
}

func TestSendEmailEmptyBody(t *testing.T) {
	uc := &fakeUsecase{outcome: domain.EmailOutcome{Success: true}}
	r := newRouter(uc)

	w := doPost(t, r, `{"to":["a@x.com"],"body":"   "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email body is required")
	assert.False(t, uc.called)
}

func manyRecipients(n int) string {
	addrs := make([]string, n)
	for i := range addrs {
		addrs[i] = `"user` + string(rune('a'+i%26)) + `@x.com"`
	}
	return strings.Join(addrs, ",")
}
