package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubAuthService struct {
	registerErr error
	loginResp   *response.LoginResponse
	loginErr    error
	forgetErr   error
	verifyErr   error
	resetErr    error
}

func (s *stubAuthService) Register(ctx context.Context, req *request.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) ForgetPassword(ctx context.Context, email string) error {
	return s.forgetErr
}

func (s *stubAuthService) VerifyOTP(ctx context.Context, email, otp string) error {
	return s.verifyErr
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email, password string) error {
	return s.resetErr
}

func doPost(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/x", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestRegisterStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"created", nil, http.StatusCreated},
		{"duplicate email", usecase.ErrEmailTaken, http.StatusBadRequest},
		{"store failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{registerErr: tc.err}, zap.NewNop())
			rec := doPost(h.Register, `{"name":"Asha","dateOfBirth":"1995-06-15","email":"a@b.com","password":"secret123"}`)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestLoginStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		svc  *stubAuthService
		want int
	}{
		{"ok", &stubAuthService{loginResp: &response.LoginResponse{Token: "t"}}, http.StatusOK},
		{"unknown user", &stubAuthService{loginErr: usecase.ErrUserNotFound}, http.StatusBadRequest},
		{"wrong password", &stubAuthService{loginErr: usecase.ErrIncorrectPassword}, http.StatusBadRequest},
		{"store failure", &stubAuthService{loginErr: assert.AnError}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(tc.svc, zap.NewNop())
			rec := doPost(h.Login, `{"email":"a@b.com","password":"secret123"}`)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestLoginReturnsBareToken(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginResp: &response.LoginResponse{Token: "jwt-token"}}, zap.NewNop())
	rec := doPost(h.Login, `{"email":"a@b.com","password":"secret123"}`)

	assert.JSONEq(t, `{"token":"jwt-token"}`, rec.Body.String())
}

func TestVerifyOTPStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"match", nil, http.StatusOK},
		{"mismatch", usecase.ErrInvalidOTP, http.StatusBadRequest},
		{"store failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{verifyErr: tc.err}, zap.NewNop())
			rec := doPost(h.VerifyOTP, `{"email":"a@b.com","otp":"123456"}`)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestResetPasswordStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusOK},
		{"unknown user", usecase.ErrUserNotFound, http.StatusNotFound},
		{"store failure", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{resetErr: tc.err}, zap.NewNop())
			rec := doPost(h.ResetPassword, `{"email":"a@b.com","password":"secret123"}`)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestForgetPasswordStatusCodes(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zap.NewNop())
	rec := doPost(h.ForgetPassword, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	h = NewAuthHandler(&stubAuthService{forgetErr: assert.AnError}, zap.NewNop())
	rec = doPost(h.ForgetPassword, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
