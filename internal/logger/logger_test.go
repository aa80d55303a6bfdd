package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_ValidLevel(t *testing.T) {
	log, err := New("debug")
	assert.NoError(t, err)
	assert.NotNil(t, log)
	assert.Equal(t, log, Log)
}

func TestNew_InvalidLevel(t *testing.T) {
	log, err := New("not-a-level")
	assert.Error(t, err)
	assert.Nil(t, log)
}
