package image

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultTemplate names the published snapcraft build images, one tag per
// base.
const DefaultTemplate = "diddledani/snapcraft:{{ .Base }}"

// DockerHub is the registry short names resolve to.
const DockerHub = "docker.io"

var ErrEmptyReference = errors.New("image reference is empty")

// Image resolves the container image a snap is built in.
type Image struct {
	Template string
	Registry string
	Base     string
}

func New(base string) *Image {
	return &Image{
		Template: DefaultTemplate,
		Base:     base,
	}
}

// SetTemplate overrides the image template; an empty template keeps the
// default.
func (i *Image) SetTemplate(tpl string) *Image {
	if tpl != "" {
		i.Template = tpl
	}
	return i
}

// SetRegistry makes short names fully qualified with registry.
func (i *Image) SetRegistry(registry string) *Image {
	i.Registry = registry
	return i
}

// Reference renders the image reference for the base.
func (i *Image) Reference() (string, error) {
	ref, err := TemplateString(i.Template, map[string]interface{}{
		"Base": i.Base,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render image template %q: %w", i.Template, err)
	}
	if ref == "" {
		return "", ErrEmptyReference
	}
	if i.Registry != "" && !hasRegistry(ref) {
		ref = strings.TrimSuffix(i.Registry, "/") + "/" + ref
	}
	return ref, nil
}

// hasRegistry applies the docker reference rule: the first path component is
// a registry host when it contains a '.' or ':' or is "localhost".
func hasRegistry(ref string) bool {
	first, _, found := strings.Cut(ref, "/")
	if !found {
		return false
	}
	return strings.ContainsAny(first, ".:") || first == "localhost"
}
