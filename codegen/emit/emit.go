package emit

import (
	_ "embed"
	"path/filepath"

	"goa.design/goa/v3/codegen"

	"goa.design/jscodegen/codegen/code"
	"goa.design/jscodegen/codegen/naming"
)

type (
	// sectionData is the data rendered by the section template.
	sectionData struct {
		Lines []string
	}
)

//go:embed templates/section.js.tpl
var sectionT string

// Section returns a section template rendering frags one per line. Expression
// fragments are optimized first and fragments rendering to the empty string
// are skipped.
func Section(name string, frags ...code.Code) *codegen.SectionTemplate {
	lines := make([]string, 0, len(frags))
	for _, f := range frags {
		if f.IsExpr() {
			f.Optimize()
		}
		if s := f.String(); s != "" {
			lines = append(lines, s)
		}
	}
	return &codegen.SectionTemplate{
		Name:   name,
		Source: sectionT,
		Data:   sectionData{Lines: lines},
	}
}

// NewFile returns a file made of the given sections.
func NewFile(path string, sections ...*codegen.SectionTemplate) *codegen.File {
	return &codegen.File{
		Path:             path,
		SectionTemplates: sections,
	}
}

// FilePath returns the path of the JavaScript module generated for name under
// dir: gen/<sanitized_name>.js.
func FilePath(dir, name string) string {
	return filepath.Join(dir, naming.SanitizeToken(name, "module")+".js")
}
