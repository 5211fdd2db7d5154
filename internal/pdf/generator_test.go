package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

const testTemplate = `<html><body>
<h1>{{.Names}} {{.Surnames}}</h1>
<p>{{.Email}}</p>
{{if .AboutMe}}<p>{{.AboutMe}}</p>{{end}}
<ul>{{range .Languages}}<li>{{.LanguageName}}: {{.MasteryLevel}}</li>{{end}}</ul>
</body></html>`

func TestRenderHTML(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "resume.html")
	require.NoError(t, os.WriteFile(templatePath, []byte(testTemplate), 0o644))

	g := NewGenerator(templatePath)

	export := &domain.ResumeExport{
		Email:    "maria.gonzalez@ualumni.example",
		Names:    "María José",
		Surnames: "González Pérez",
		AboutMe:  "Backend developer.",
		Languages: []domain.ResumeLanguage{
			{LanguageName: "Español", MasteryLevel: 5},
			{LanguageName: "Inglés", MasteryLevel: 3},
		},
	}

	html, err := g.renderHTML(export)
	require.NoError(t, err)

	assert.Contains(t, html, "María José González Pérez")
	assert.Contains(t, html, "maria.gonzalez@ualumni.example")
	assert.Contains(t, html, "Español: 5")
	assert.Contains(t, html, "Inglés: 3")
}

func TestRenderHTMLMissingTemplate(t *testing.T) {
	g := NewGenerator(filepath.Join(t.TempDir(), "missing.html"))

	_, err := g.renderHTML(&domain.ResumeExport{})
	assert.ErrorContains(t, err, "failed to parse resume template")
}
