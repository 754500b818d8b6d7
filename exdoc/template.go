package exdoc

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"
)

// Fields is the complete set of values a document render needs. All fields
// are plain strings; Screenshot holds a pre-rendered fragment and is empty
// when no snapshot is available.
//
// Substitution is literal named-slot replacement only: substituted content
// is never re-interpreted, so docstrings containing template-like sequences
// pass through verbatim.
type Fields struct {
	Title      string // human-readable example title
	Name       string // example base name
	Path       string // source path relative to the examples root marker
	Docstring  string // cleaned reStructuredText docstring
	Screenshot string // optional screenshot fragment, "" to omit
}

// screenshotTemplate references the snapshot by file name under the fixed
// images/ subdirectory of the docs root.
const screenshotTemplate = `
Screenshot
-------------------------------------------------------------------------------

.. image:: images/{{.}}
`

const documentTemplate = `
..
  NOTE: This RST file was generated by exdoc.
  Do not edit it directly.

{{.Title}} Example
===============================================================================

{{.Docstring}}

.. TIP:: To see this example in action, download it from
 :download:` + "`" + `{{.Name}} <../../../{{.Path}}>` + "`" + `
 and run::

   $ enaml-run {{.Name}}.enaml

{{.Screenshot}}
Example Enaml Code
-------------------------------------------------------------------------------
.. literalinclude:: ../../../{{.Path}}
    :language: enaml
`

var (
	screenshotTmpl = template.Must(template.New("screenshot").Parse(screenshotTemplate))
	documentTmpl   = template.Must(template.New("document").Parse(documentTemplate))
)

// RenderScreenshotFragment produces the screenshot block for an image file
// name. The caller nests the result into Fields.Screenshot.
func RenderScreenshotFragment(imageFileName string) string {
	var sb strings.Builder
	// Execution over a plain string cannot fail.
	_ = screenshotTmpl.Execute(&sb, imageFileName)
	return sb.String()
}

// RenderDocument produces the full document text for an example. Leading
// whitespace is stripped so the generation-warning comment starts the file.
func RenderDocument(f Fields) (string, error) {
	if err := f.validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := documentTmpl.Execute(&sb, f); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}
	return strings.TrimLeftFunc(sb.String(), unicode.IsSpace), nil
}

// validate checks that every required field is resolved. Docstring and
// Screenshot may legitimately be empty.
func (f Fields) validate() error {
	switch {
	case f.Title == "":
		return fmt.Errorf("%w: title", ErrMissingField)
	case f.Name == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case f.Path == "":
		return fmt.Errorf("%w: path", ErrMissingField)
	}
	return nil
}
