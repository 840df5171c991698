package printing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateEngine_RenderString(t *testing.T) {
	engine := NewTemplateEngine()

	t.Run("renders with data", func(t *testing.T) {
		html, err := engine.RenderString("test", "<p>{{ .Name }}</p>", map[string]interface{}{"Name": "Viola"})

		require.NoError(t, err)
		assert.Equal(t, "<p>Viola</p>", html)
	})

	t.Run("escapes user content", func(t *testing.T) {
		html, err := engine.RenderString("test", "<p>{{ .Name }}</p>", map[string]interface{}{"Name": "<script>"})

		require.NoError(t, err)
		assert.Equal(t, "<p>&lt;script&gt;</p>", html)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := engine.RenderString("test", "", nil)

		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})

	t.Run("rejects invalid template syntax", func(t *testing.T) {
		_, err := engine.RenderString("test", "{{ .Name", nil)

		var renderErr *RenderError
		require.ErrorAs(t, err, &renderErr)
		assert.Equal(t, ErrCodeInvalidHTML, renderErr.Code)
	})
}

func TestTemplateEngine_FuncMap(t *testing.T) {
	engine := NewTemplateEngine()

	t.Run("exposes exactly the helpers the document markup uses", func(t *testing.T) {
		funcMap := engine.GetFuncMap()

		require.Len(t, funcMap, 2)
		assert.Contains(t, funcMap, "seq")
		assert.Contains(t, funcMap, "safeURL")
	})

	t.Run("seq drives padding row repetition", func(t *testing.T) {
		html, err := engine.RenderString("test", `{{ range seq .N }}<tr></tr>{{ end }}`, map[string]interface{}{"N": 3})

		require.NoError(t, err)
		assert.Equal(t, "<tr></tr><tr></tr><tr></tr>", html)
	})

	t.Run("safeURL keeps the logo data URL intact", func(t *testing.T) {
		data := map[string]interface{}{"Logo": "data:image/png;base64,iVBORw0KGgo="}
		html, err := engine.RenderString("test", `<img src="{{ safeURL .Logo }}">`, data)

		require.NoError(t, err)
		assert.Equal(t, `<img src="data:image/png;base64,iVBORw0KGgo=">`, html)
	})
}

func TestSeq(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, seq(3))
	assert.Empty(t, seq(0))
	assert.Empty(t, seq(-1))
}
