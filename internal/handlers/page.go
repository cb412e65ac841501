package handlers

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"github.com/nryeo/QRCODE-APP01/internal/model"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type modeOption struct {
	Value    string
	Label    string
	Selected bool
}

// pageView собирает всё, что нужно шаблону
type pageView struct {
	*model.RenderModel
	Modes          []modeOption
	Image          template.URL
	DownloadURL    template.URL
	FileName       string
	MinModuleSize  int
	MaxModuleSize  int
	MinBorderWidth int
	MaxBorderWidth int
}

func newPageView(rm *model.RenderModel) pageView {
	v := pageView{
		RenderModel:    rm,
		FileName:       DownloadFileName,
		MinModuleSize:  model.MinModuleSize,
		MaxModuleSize:  model.MaxModuleSize,
		MinBorderWidth: model.MinBorderWidth,
		MaxBorderWidth: model.MaxBorderWidth,
	}
	for _, m := range model.Modes() {
		v.Modes = append(v.Modes, modeOption{Value: string(m), Label: m.Label(), Selected: m == rm.Mode})
	}
	if rm.HasImage() {
		// data: URI собран нами из байтов PNG, экранирование не требуется
		v.Image = template.URL(rm.DataURI())
		v.DownloadURL = template.URL("/download?" + styleQuery(rm.Text, rm.Style).Encode())
	}
	return v
}

func styleQuery(text string, st model.Style) url.Values {
	return url.Values{
		"text":         {text},
		"fill_color":   {st.FillColor},
		"back_color":   {st.BackColor},
		"module_size":  {strconv.Itoa(st.ModuleSize)},
		"border_width": {strconv.Itoa(st.BorderWidth)},
	}
}
