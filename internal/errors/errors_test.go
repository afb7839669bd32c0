package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{API(errors.New("401 unauthorized")), "OpenAI API error: 401 unauthorized"},
		{Config("Could not find config directory"), "Configuration error: Could not find config directory"},
		{IO(fs.ErrPermission), "IO error: permission denied"},
		{UserCancelled(nil), "User cancelled the operation"},
		{InvalidInput("Input cannot be empty"), "Invalid input: Input cannot be empty"},
		{MissingAPIKey(), "API key not found. Please set OPENAI_API_KEY environment variable"},
		{ErrNoResponse, "Configuration error: No response from AI"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.err.Error())
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading: %w", InvalidInput("bad"))

	assert.True(t, IsKind(err, KindInvalidInput))
	assert.False(t, IsKind(err, KindConfig))
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, IsKind(nil, KindIO))
}

func TestUnwrapReachesCause(t *testing.T) {
	err := IO(fs.ErrNotExist)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, IO(nil))
	assert.Nil(t, WrapConfig(nil))
}

func TestErrNoResponseMatchesByValue(t *testing.T) {
	err := fmt.Errorf("generate: %w", &Error{Kind: KindConfig, Message: "No response from AI"})

	assert.ErrorIs(t, err, ErrNoResponse)
	assert.NotErrorIs(t, Config("something else"), ErrNoResponse)
}
