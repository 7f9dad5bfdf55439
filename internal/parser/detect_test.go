package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/smart-diff/internal/types"
)

func TestDetectLanguage_ExtensionWinsWithoutStrongContradictingSignal(t *testing.T) {
	src := []byte("def add(a, b):\n    return a + b\n")
	assert.Equal(t, types.LanguagePython, DetectLanguage("add.py", src))
}

func TestDetectLanguage_UnknownExtensionFallsBackToContent(t *testing.T) {
	src := []byte("fn main() {\n    let x = 1;\n}\n")
	lang := DetectLanguage("snippet.txt", src)
	assert.Equal(t, types.LanguageRust, lang)
}

func TestDetectLanguage_UnknownExtensionWeakSignalStaysUnknown(t *testing.T) {
	lang := DetectLanguage("data.dat", []byte("just some plain text"))
	assert.Equal(t, types.LanguageUnknown, lang)
}

func TestDetectLanguage_MisleadingExtensionOverriddenByStrongContent(t *testing.T) {
	// .txt has no extension mapping at all; use a .c-extension file whose
	// content is unambiguously C++ to exercise the >= 0.5 override margin.
	src := []byte("#include <iostream>\nstd::string s;\nnamespace app { class Widget {}; }\n")
	lang := DetectLanguage("legacy.c", src)
	assert.Equal(t, types.LanguageCpp, lang)
}

func TestDetectLanguage_KnownExtensionWinsOnWeakContradiction(t *testing.T) {
	src := []byte("package main\nconsole.log(1)\n")
	lang := DetectLanguage("app.java", src)
	assert.Equal(t, types.LanguageJava, lang)
}

func TestExtensionLanguage_TableLookup(t *testing.T) {
	lang, ok := types.ExtensionLanguage(".rs")
	assert.True(t, ok)
	assert.Equal(t, types.LanguageRust, lang)

	_, ok = types.ExtensionLanguage(".xyz")
	assert.False(t, ok)
}
