package library

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validationf("bad field")))
	assert.Equal(t, KindPrecondition, KindOf(Preconditionf("edge exists")))
	assert.Equal(t, KindNotFound, KindOf(NotFoundf("no user")))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorizedf("not admin")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestFaultSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", NotFoundf("no user found with username %s", "alice"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Contains(t, err.Error(), "alice")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "precondition", KindPrecondition.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
