package i3bar_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"pomobar/internal/i3bar"
)

func TestEmit(t *testing.T) {
	var buf bytes.Buffer

	err := i3bar.Block{
		FullText:  "W 09:49",
		ShortText: "09:49",
		Color:     "#B0DB43",
	}.Emit(&buf)

	assert.NoError(t, err)
	assert.Equal(
		t,
		`{"full_text":"W 09:49","short_text":"09:49","color":"#B0DB43"}`+"\n",
		buf.String(),
	)
}

func TestEmitWithBackground(t *testing.T) {
	var buf bytes.Buffer

	err := i3bar.Block{
		FullText:   "W 09:49",
		ShortText:  "09:49",
		Color:      "#DC322F",
		Background: "#002B36",
	}.Emit(&buf)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"background":"#002B36"`)
}

func TestEmitOmitsEmptyFields(t *testing.T) {
	var buf bytes.Buffer

	err := i3bar.Block{FullText: "W 09:49"}.Emit(&buf)

	assert.NoError(t, err)
	assert.Equal(t, `{"full_text":"W 09:49"}`+"\n", buf.String())
}
