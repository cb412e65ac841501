package handlers

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nryeo/QRCODE-APP01/internal/model"
)

func TestNewPageView_DownloadURL(t *testing.T) {
	rm := &model.RenderModel{
		Text:  "a&b=c",
		Mode:  model.ModeBoth,
		Style: model.Style{FillColor: "#000000", BackColor: "#ffffff", ModuleSize: 6, BorderWidth: 2},
		PNG:   []byte{0x89, 'P', 'N', 'G'},
	}
	v := newPageView(rm)

	require.True(t, strings.HasPrefix(string(v.DownloadURL), "/download?"))
	u, err := url.Parse(string(v.DownloadURL))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "a&b=c", q.Get("text"))
	assert.Equal(t, "#000000", q.Get("fill_color"))
	assert.Equal(t, "6", q.Get("module_size"))
	assert.Equal(t, "2", q.Get("border_width"))

	assert.True(t, strings.HasPrefix(string(v.Image), "data:image/png;base64,"))

	var selected []string
	for _, m := range v.Modes {
		if m.Selected {
			selected = append(selected, m.Value)
		}
	}
	assert.Equal(t, []string{"both"}, selected)
}

func TestNewPageView_NoImage(t *testing.T) {
	v := newPageView(&model.RenderModel{Mode: model.ModeGenerate})
	assert.Empty(t, v.Image)
	assert.Empty(t, v.DownloadURL)
	assert.Len(t, v.Modes, 3)
}
