// Package theme resolves the display palette from the X resource
// database at startup.
package theme

import (
	"os/exec"
	"strings"

	"pomobar/internal/apperr"
)

var errResolveColor = &apperr.Error{
	Message: "unable to resolve color for %q: %v",
}

// Palette holds the fixed set of colors used to render the block. It is
// built once at startup and passed explicitly to the rendering step.
type Palette struct {
	Warning string
	Alert   string
	Success string
	Neutral string
}

// Resolver looks up a color resource by key, returning the fallback
// when the key is not defined.
type Resolver interface {
	Resolve(key, fallback string) (string, error)
}

// XResources resolves colors through xrescat, querying the X resource
// database the status bar itself is themed from.
type XResources struct{}

func (XResources) Resolve(key, fallback string) (string, error) {
	out, err := exec.Command("xrescat", key, fallback).Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// Static resolves every key to its fallback. It serves hosts without an
// X resource database and doubles as the test resolver.
type Static struct{}

func (Static) Resolve(_, fallback string) (string, error) {
	return fallback, nil
}

// Load builds the palette through the given resolver. A resolver
// failure is fatal: the palette is required before any stage can be
// rendered.
func Load(r Resolver) (Palette, error) {
	var p Palette

	for _, c := range []struct {
		dst      *string
		key      string
		fallback string
	}{
		{&p.Warning, "color3", "#B58900"},
		{&p.Alert, "color1", "#DC322F"},
		{&p.Success, "color2", "#859900"},
		{&p.Neutral, "foreground", "#839496"},
	} {
		v, err := r.Resolve(c.key, c.fallback)
		if err != nil {
			return Palette{}, errResolveColor.Fmt(c.key, err)
		}

		*c.dst = v
	}

	return p, nil
}
