package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
	"github.com/ualumni-dev/ualumni/backend/internal/domain"
)

// Generator renders resume exports into PDF files through a headless
// browser, so the layout is plain HTML/CSS.
type Generator struct {
	templatePath string
}

func NewGenerator(templatePath string) *Generator {
	return &Generator{
		templatePath: templatePath,
	}
}

func (g *Generator) renderHTML(export *domain.ResumeExport) (string, error) {
	tmpl, err := template.New(filepath.Base(g.templatePath)).ParseFiles(g.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse resume template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, export); err != nil {
		return "", fmt.Errorf("failed to execute resume template: %w", err)
	}

	return buf.String(), nil
}

// Generate renders the resume template with the export data and prints the
// resulting page as an A4 PDF.
func (g *Generator) Generate(export *domain.ResumeExport) ([]byte, error) {
	htmlContent, err := g.renderHTML(export)
	if err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	if err := page.SetContent(htmlContent, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate pdf: %w", err)
	}

	return pdfBytes, nil
}
