package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/lockbox/internal/errors"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "not found maps to 404",
			err:        apperrors.Wrap(apperrors.ErrNotFound, "no key"),
			wantStatus: http.StatusNotFound,
			wantError:  "key_missing",
		},
		{
			name:       "unauthorized maps to 401",
			err:        apperrors.Wrap(apperrors.ErrUnauthorized, "bad secret"),
			wantStatus: http.StatusUnauthorized,
			wantError:  "bad_password",
		},
		{
			name:       "locked maps to 403",
			err:        apperrors.Wrap(apperrors.ErrLocked, "locked"),
			wantStatus: http.StatusForbidden,
			wantError:  "key_locked",
		},
		{
			name:       "invalid input maps to 400",
			err:        apperrors.Wrap(apperrors.ErrInvalidInput, "bad payload"),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid_input",
		},
		{
			name:       "unknown error maps to 500",
			err:        apperrors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantError)
		})
	}
}

func TestHandleValidationErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleValidationErrorGin(c, apperrors.New("secret is required"), nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "validation_error")
}
