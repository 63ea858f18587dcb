package pdftext

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextRejectsEmptyDocument(t *testing.T) {
	r := NewReader(Config{}, nil)

	_, err := r.ExtractText(context.Background(), nil)
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "empty document", extractErr.Reason)
}

func TestExtractTextRejectsGarbage(t *testing.T) {
	r := NewReader(Config{}, nil)

	_, err := r.ExtractText(context.Background(), []byte("this is not a pdf"))
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*ExtractionError))
}

func TestExtractTextRejectsOversizedDocument(t *testing.T) {
	r := NewReader(Config{MaxFileBytes: 8}, nil)

	_, err := r.ExtractText(context.Background(), bytes.Repeat([]byte{'a'}, 16))
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*ExtractionError))
}

func TestExtractTextHonorsContext(t *testing.T) {
	r := NewReader(Config{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ExtractText(ctx, []byte("%PDF-1.7"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractionErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &ExtractionError{Reason: "invalid document", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "invalid document")
}
