package image

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/rs/zerolog/log"
)

func TemplateString(pattern string, args map[string]interface{}) (string, error) {
	var output bytes.Buffer
	t, err := template.New("image").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(pattern)
	if err != nil {
		return "", err
	}
	if err := t.Execute(&output, args); err != nil {
		return "", err
	}

	templated := strings.Trim(output.String(), " \n")
	log.Trace().Str("source", pattern).Str("templated", templated).Msg("Templating")
	return templated, nil
}
