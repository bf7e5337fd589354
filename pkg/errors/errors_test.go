// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/leveldbpatch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "missing_lines_error",
			code:    errors.ErrMissingLines,
			message: "include directive is truncated",
			wantStr: "[MISSING_LINES] include directive is truncated",
		},
		{
			name:    "config_invalid_error",
			code:    errors.ErrConfigValid,
			message: "snappy source dir is required",
			wantStr: "[CONFIG_INVALID] snappy source dir is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details, "details should be initialized")
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrEncoding, "unknown encoding %q", "klingon")
	assert.Equal(t, `unknown encoding "klingon"`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFileRead, "cannot read CMakeLists.txt")

		assert.Equal(t, errors.ErrFileRead, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FILE_READ] cannot read CMakeLists.txt: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrMissingLines, "truncated").
		WithDetail("line", 12).
		WithDetail("trigger", "target_include_directories(leveldb")

	assert.Equal(t, 12, err.Details["line"])
	assert.Equal(t, "target_include_directories(leveldb", err.Details["trigger"])
	assert.Equal(t, 12, errors.GetErrorDetails(err)["line"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFileNotFound, "error 1")
	err2 := errors.New(errors.ErrFileNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2), "same code should match")
	assert.False(t, err1.Is(err3), "different codes should not match")
	assert.True(t, stderrors.Is(err1, err2), "errors.Is should work with PatchError")
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrNeedsPatch, "stale"), errors.ErrNeedsPatch, true},
		{"different_code", errors.New(errors.ErrNeedsPatch, "stale"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"), errors.ErrFileAccess, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrFileNotFound, false},
		{"nil_error", nil, errors.ErrFileNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.GetErrorCode(errors.New(errors.ErrConfigParse, "bad toml")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read file")
	configErr := errors.Wrap(fileErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(configErr, errors.ErrConfigLoad))

	var middle *errors.PatchError
	require.True(t, stderrors.As(configErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileAccess, middle.Code)

	assert.True(t, stderrors.Is(configErr, rootCause), "should find root cause with errors.Is")
}
