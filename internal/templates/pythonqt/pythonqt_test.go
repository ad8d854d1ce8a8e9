package pythonqt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinesAllTemplates(t *testing.T) {
	set, err := Parse()
	require.NoError(t, err)

	for _, name := range []string{Banner, WrapperClass, RegisterClass, Header, Init} {
		assert.NotNil(t, set.Lookup(name), "template %s not defined", name)
	}
}

func TestGetTemplate(t *testing.T) {
	content, err := GetTemplate(Banner)
	require.NoError(t, err)
	assert.Contains(t, content, "File auto-generated by")

	_, err = GetTemplate("missing.tmpl")
	assert.Error(t, err)
}

func TestBannerRender(t *testing.T) {
	set, err := Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = set.ExecuteTemplate(&buf, Banner, map[string]string{"Tool": "PythonQtWrapper", "Version": "1.2.3"})
	require.NoError(t, err)
	assert.Equal(t, "//\n// File auto-generated by PythonQtWrapper 1.2.3\n//\n", buf.String())
}

func TestTemplateFuncs(t *testing.T) {
	funcs := TemplateFuncs()
	assert.Contains(t, funcs, "quote")
	assert.Contains(t, funcs, "underscore")
	underscore := funcs["underscore"].(func(string) string)
	assert.Equal(t, "org_commontk_foo", underscore("org.commontk.foo"))
}
