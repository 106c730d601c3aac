package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/storecat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{Resource: "document", ID: "astro-bot"}
		assert.Equal(t, "document with ID astro-bot not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		wrapped := errors.Join(errors.New("inspect"), pkgerrors.NewNotFoundError("document", "x"))
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("workers", -2, "must not be negative")
		assert.Equal(t, "validation failed for field workers: must not be negative", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "bad thresholds"}
		assert.Equal(t, "validation failed: bad thresholds", err.Error())
	})

	t.Run("wrap nil", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapValidation("x", nil))
	})
}

func TestParseError(t *testing.T) {
	base := errors.New("unexpected EOF")
	err := pkgerrors.WrapParse("json", "snapshot.json", base)

	var perr *pkgerrors.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "json", perr.Format)
	assert.Equal(t, "parse error in json file snapshot.json: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, base)

	perr.Offset = 42
	assert.Contains(t, perr.Error(), "offset 42")
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "/out/games.csv", base)
	assert.Equal(t, "IO error during write of /out/games.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, base)
	assert.NoError(t, pkgerrors.WrapIO("write", "x", nil))
}

func TestResourceError(t *testing.T) {
	err := pkgerrors.WrapResource("insert", "table", "games", errors.New("disk full"))
	assert.Equal(t, "failed to insert table games: disk full", err.Error())

	err = pkgerrors.NewResourceError("flush", "metrics", "", nil)
	assert.Equal(t, "failed to flush metrics: ", err.Error())
}

func TestConfigError(t *testing.T) {
	base := errors.New("not a date")
	err := pkgerrors.NewConfigError("release_cutoff", "invalid value", base)
	assert.Equal(t, "configuration error in release_cutoff: invalid value", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestExtractionError(t *testing.T) {
	t.Run("panic value", func(t *testing.T) {
		err := pkgerrors.NewExtractionError("some-game", "index out of range")
		assert.True(t, pkgerrors.IsExtraction(err))
		assert.Nil(t, err.Unwrap())
		assert.Contains(t, err.Error(), "some-game")
	})

	t.Run("error cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := pkgerrors.NewExtractionError("some-game", cause)
		assert.ErrorIs(t, err, cause)
	})
}
