package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/folio3d/internal/engine/ui2d"
)

// Document panel size in pixels.
const (
	DocumentWidth  = 800
	DocumentHeight = 600
)

// Panel tints for the resume plane.
var (
	ResumeColor      = ui2d.MustHex("#222")
	ResumeHoverColor = ui2d.MustHex("#333")
)

// ResumeOpacity is the alpha of the resume plane.
const ResumeOpacity = 0.05

// Resume is the content shown in the document panel.
type Resume struct {
	Name     string    `yaml:"name"`
	Headline string    `yaml:"headline"`
	Summary  string    `yaml:"summary"`
	Sections []Section `yaml:"sections"`
}

// Section is a titled list of entries.
type Section struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// DefaultResume is shown when no resume file is configured.
func DefaultResume() *Resume {
	return &Resume{
		Name:     "Milind",
		Headline: "Frontend Engineer",
		Summary:  "Builds interactive web experiences with Next.js, React and Tailwind CSS.",
		Sections: []Section{
			{Title: "Skills", Items: []string{"Next.js", "React", "Tailwind CSS", "TypeScript", "three.js"}},
			{Title: "More", Items: []string{"Press O to open the full resume in your browser."}},
		},
	}
}

// LoadResume reads resume content from a YAML file.
func LoadResume(path string) (*Resume, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading resume: %w", err)
	}
	var r Resume
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing resume %s: %w", path, err)
	}
	if r.Name == "" && len(r.Sections) == 0 {
		return nil, fmt.Errorf("resume %s has no content", path)
	}
	return &r, nil
}

// DocumentRect centers the document panel on a screen, shrinking it to fit.
func DocumentRect(screenW, screenH float32) ui2d.Rect {
	w := min(float32(DocumentWidth), screenW-40)
	h := min(float32(DocumentHeight), screenH-40)
	return ui2d.Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}
}

// DrawResume draws the document panel at the given opacity and reports
// whether its open button was clicked.
func DrawResume(ctx *ui2d.Context, r *Resume, opacity float32) bool {
	if r == nil || opacity <= 0 {
		return false
	}
	ctx.SetAlpha(opacity)
	defer ctx.SetAlpha(1)

	sw, sh := ctx.ScreenSize()
	ctx.BeginPanel("resume", DocumentRect(sw, sh), ui2d.PanelStyle{
		Background:  ui2d.ColorDocumentBg,
		Border:      ui2d.ColorPanelBorder,
		Text:        ui2d.ColorDocumentText,
		Padding:     28,
		TextScale:   1,
		Interactive: true,
	})
	defer ctx.EndPanel()

	ctx.LabelStyled(r.Name, ui2d.ColorDocumentText, 2)
	if r.Headline != "" {
		ctx.LabelStyled(r.Headline, ui2d.ColorDocumentDim, 1)
	}
	if r.Summary != "" {
		ctx.Spacer(6)
		ctx.Paragraph(r.Summary, ui2d.ColorDocumentText, 1)
	}
	for _, s := range r.Sections {
		ctx.Spacer(8)
		ctx.LabelStyled(s.Title, ui2d.ColorDocumentText, 1.5)
		ctx.Separator()
		for _, item := range s.Items {
			ctx.Paragraph("- "+item, ui2d.ColorDocumentText, 1)
		}
	}
	ctx.Spacer(12)
	return ctx.Button("open", 180, "Open resume")
}
