package receipt

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

//go:embed receipt.html.tmpl
var receiptTemplateText string

var receiptTemplate = template.Must(template.New("receipt").Parse(receiptTemplateText))

// RenderHTML executes the receipt template for v.
func RenderHTML(v View) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("failed to execute receipt template: %w", err)
	}
	return buf.Bytes(), nil
}
