package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractParent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Parent
		wantOK bool
	}{
		{"no argument", "Foo();", NoParent, true},
		{"qobject", "Foo(QObject* parent = 0);", ParentQObject, true},
		{"qwidget", "Foo(QWidget *parent=NULL);", ParentQWidget, true},
		{"qwidget with flags", "Foo(QWidget* parent, Qt::WindowFlags flags = 0);", ParentQWidget, true},
		{
			// Pattern priority, not file position, decides.
			name:   "no argument wins over earlier qobject",
			text:   "Foo(QObject* parent = 0);\nFoo();",
			want:   NoParent,
			wantOK: true,
		},
		{
			name:   "qobject wins over earlier qwidget",
			text:   "Foo(QWidget* parent = 0);\nFoo(QObject* parent = 0);",
			want:   ParentQObject,
			wantOK: true,
		},
		{"destructor ignored", "~Foo();", NoParent, false},
		{"unsupported parent", "Foo(QGraphicsItem* parent = 0);", NoParent, false},
		{"empty", "", NoParent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractParent(tt.text, "Foo")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractParentQuotesClassName(t *testing.T) {
	// Regex metacharacters in the class name must not widen the match.
	_, ok := ExtractParent("FooXBar();", "Foo.Bar")
	assert.False(t, ok)
}

func TestParentString(t *testing.T) {
	assert.Equal(t, "none", NoParent.String())
	assert.Equal(t, "QWidget", ParentQWidget.String())
	assert.False(t, NoParent.HasParent())
	assert.True(t, ParentQObject.HasParent())
}
