package header

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetHeader = `#ifndef __Foo_h
#define __Foo_h

#include <QWidget>

class Foo : public QWidget
{
  Q_OBJECT
public:
  Foo(QWidget* parent = 0);
  virtual ~Foo();

  virtual void paint();
};

#endif
`

func TestIsRegularHeader(t *testing.T) {
	tests := []struct {
		fileName string
		want     bool
	}{
		{"Foo.h", true},
		{"include/Foo.H", true},
		{"Foo.hpp", false},
		{"Foo.cpp", false},
		{"Foo.h.in", false},
		{"Foo", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRegularHeader(tt.fileName), "IsRegularHeader(%q)", tt.fileName)
	}
}

func TestIsPimplHeader(t *testing.T) {
	tests := []struct {
		fileName string
		want     bool
	}{
		{"FooBar_p.h", true},
		{"src/FooBar_P.H", true},
		{"FooBar.h", false},
		{"Foo_pimpl.h", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPimplHeader(tt.fileName), "IsPimplHeader(%q)", tt.fileName)
	}
}

func TestHasMetaObjectMarker(t *testing.T) {
	assert.True(t, HasMetaObjectMarker(widgetHeader))
	assert.True(t, HasMetaObjectMarker("class A {\n  Q_OBJECT\n};"))
	assert.True(t, HasMetaObjectMarker("Q_OBJECT"))
	assert.False(t, HasMetaObjectMarker("class A {\n  Q_GADGET\n};"))
	assert.False(t, HasMetaObjectMarker(""))
}

func TestHasEligibleConstructor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"no argument", "Foo();", true},
		{"no argument with spaces", "  Foo ( ) ;", true},
		{"qwidget default 0", "Foo(QWidget* parent = 0);", true},
		{"qobject default NULL", "explicit Foo(QObject *parent=NULL);", true},
		{"qobject default nullptr", "Foo(QObject* parent = nullptr);", true},
		{"sole pointer argument", "Foo(QWidget* parent);", true},
		{"followed by defaulted arguments", "Foo(QWidget* parent, Qt::WindowFlags f = 0);", true},
		{"spans lines", "Foo(\n    QObject* parent\n    = 0);", true},
		{"destructor only", "~Foo();", false},
		{"other parent type", "Foo(QGraphicsItem* parent = 0);", false},
		{"value argument", "Foo(int value);", false},
		{"non defaulted second argument", "Foo(QWidget* parent, int value);", false},
		{"other class name", "MyFoo();", false},
		{"no declaration", "class Foo {};", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasEligibleConstructor(tt.text, "Foo"))
		})
	}
}

func TestHasPureVirtualMethod(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"simple", "virtual foo() = 0;", true},
		{"typed", "virtual void paint() = 0;", true},
		{"const", "virtual int size() const = 0;", true},
		{"null", "virtual QWidget* widget() = NULL ;", true},
		{"arguments", "virtual void setValue(int a, const QString& b) = 0;", true},
		{"multi line", "virtual void\n  paint()\n  =\n  0;", true},
		{"plain virtual", "virtual void paint();", false},
		{"virtual destructor", "virtual ~Foo();", false},
		{"defaulted argument", "virtual void paint(int x = 0);", false},
		{"no virtual", "void paint() = 0;", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPureVirtualMethod(tt.text))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		fileName   string
		text       string
		wantReason Reason
		wantParent Parent
	}{
		{
			name:       "widget accepted",
			fileName:   "include/Foo.h",
			text:       widgetHeader,
			wantReason: ReasonNone,
			wantParent: ParentQWidget,
		},
		{
			name:       "object accepted",
			fileName:   "Foo.h",
			text:       "class Foo : public QObject {\n Q_OBJECT\npublic:\n Foo(QObject* parent = 0);\n};",
			wantReason: ReasonNone,
			wantParent: ParentQObject,
		},
		{
			name:       "no parent accepted",
			fileName:   "Foo.h",
			text:       "class Foo : public QObject {\n Q_OBJECT\npublic:\n Foo();\n};",
			wantReason: ReasonNone,
			wantParent: NoParent,
		},
		{
			name:       "not a header",
			fileName:   "Foo.cpp",
			text:       widgetHeader,
			wantReason: ReasonNotRegularHeader,
		},
		{
			name:       "pimpl header",
			fileName:   "FooBar_p.h",
			text:       widgetHeader,
			wantReason: ReasonPimplHeader,
		},
		{
			name:       "missing marker",
			fileName:   "Foo.h",
			text:       "class Foo : public QWidget {\npublic:\n Foo(QWidget* parent = 0);\n};",
			wantReason: ReasonMissingMetaObjectMarker,
		},
		{
			name:       "only destructor",
			fileName:   "Foo.h",
			text:       "class Foo : public QObject {\n Q_OBJECT\npublic:\n ~Foo();\n};",
			wantReason: ReasonNoEligibleConstructor,
		},
		{
			name:       "suffix-named call ignored",
			fileName:   "Foo.h",
			text:       "class Foo : public QObject {\n Q_OBJECT\npublic:\n Foo(QObject* parent = 0);\n void reset() { resetMyFoo(); }\n};",
			wantReason: ReasonNone,
			wantParent: ParentQObject,
		},
		{
			name:       "abstract class",
			fileName:   "Foo.h",
			text:       "class Foo : public QObject {\n Q_OBJECT\npublic:\n Foo(QObject* parent = 0);\n virtual foo() = 0;\n};",
			wantReason: ReasonPureVirtualMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(tt.text, tt.fileName)
			assert.Equal(t, tt.wantReason, result.Reason, "reason = %s", result.Reason)
			assert.Equal(t, tt.wantReason == ReasonNone, result.Accepted)
			assert.Equal(t, tt.fileName, result.Path)
			if result.Accepted {
				assert.Equal(t, "Foo", result.ClassName)
				assert.Equal(t, tt.wantParent, result.Parent)
				assert.NoError(t, result.Error())
			}
		})
	}
}

func TestClassifyMissingMarkerWins(t *testing.T) {
	// The marker check runs before constructor and pure-virtual checks.
	texts := []string{
		"",
		"class Foo { public: Foo(); };",
		"class Foo { public: Foo(QWidget* parent = 0); virtual void f() = 0; };",
		"// Q_OBJEC T\nclass Foo {};",
	}
	for _, text := range texts {
		result := Classify(text, "Foo.h")
		assert.Equal(t, ReasonMissingMetaObjectMarker, result.Reason, "text %q", text)
	}
}

func TestClassifyPureVirtualRejected(t *testing.T) {
	text := "class Foo : public QObject {\n  Q_OBJECT\npublic:\n  Foo();\n  virtual foo() = 0;\n};"
	result := Classify(text, "Foo.h")
	require.False(t, result.Accepted)
	assert.Equal(t, ReasonPureVirtualMethod, result.Reason)
}

func TestResultError(t *testing.T) {
	result := Classify("", "FooBar_p.h")
	err := result.Error()
	require.Error(t, err)

	var rejection *RejectionError
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, ReasonPimplHeader, rejection.Reason)
	assert.Equal(t, "FooBar_p.h: skipping - private-implementation header (*_p.h)", err.Error())
}

func TestClassifyName(t *testing.T) {
	assert.True(t, ClassifyName("a/Foo.h").Accepted)
	assert.Equal(t, ReasonNotRegularHeader, ClassifyName("Foo.txt").Reason)
	assert.Equal(t, ReasonPimplHeader, ClassifyName("Foo_p.h").Reason)
	assert.Equal(t, "Foo_p", ClassifyName("Foo_p.h").ClassName)
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "missing Q_OBJECT meta-object marker", ReasonMissingMetaObjectMarker.String())
	assert.Equal(t, "could not determine parent class", ReasonUnknownParentClass.String())
	assert.Equal(t, "Reason(42)", Reason(42).String())
}
