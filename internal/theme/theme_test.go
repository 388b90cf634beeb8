package theme_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pomobar/internal/theme"
)

type recordingResolver struct {
	keys []string
}

func (r *recordingResolver) Resolve(key, fallback string) (string, error) {
	r.keys = append(r.keys, key)

	return "#123456", nil
}

type failingResolver struct{}

func (failingResolver) Resolve(key, fallback string) (string, error) {
	return "", errors.New("xrescat: command not found")
}

func TestLoadStaticDefaults(t *testing.T) {
	pal, err := theme.Load(theme.Static{})

	assert.NoError(t, err)
	assert.Equal(t, theme.Palette{
		Warning: "#B58900",
		Alert:   "#DC322F",
		Success: "#859900",
		Neutral: "#839496",
	}, pal)
}

func TestLoadQueriesEveryKey(t *testing.T) {
	r := &recordingResolver{}

	pal, err := theme.Load(r)

	assert.NoError(t, err)
	assert.Equal(t, []string{"color3", "color1", "color2", "foreground"}, r.keys)
	assert.Equal(t, "#123456", pal.Warning)
	assert.Equal(t, "#123456", pal.Neutral)
}

func TestLoadResolverFailureIsFatal(t *testing.T) {
	_, err := theme.Load(failingResolver{})

	assert.ErrorContains(t, err, "unable to resolve color")
}
