package domain

import "strings"

// Language identifies the snippet's programming language. Values are
// lowercase identifiers; an explicit caller hint is trusted verbatim.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangTypeScript Language = "typescript"
	LangJava       Language = "java"
	LangC          Language = "c"
	LangCPP        Language = "cpp"
)

// LanguageAuto asks the detector to infer the language from the text.
const LanguageAuto = "auto"

// DefaultLanguage is used when nothing in the text gives the language
// away.
const DefaultLanguage = LangJavaScript

// Indicator lists are checked in priority order: Python first, then
// Java, C++, C, TypeScript, JavaScript. Substring match against the
// trimmed text, case-sensitive.
var (
	pythonIndicators = []string{
		"def ", "import ", "from ", "print(", "if __name__", "lambda ", "yield ",
		"try:", "except:", "finally:", "with ", "as ", "elif ", "else:", "class ",
		"@", "__init__", "self.", "None", "True", "False",
	}
	javaIndicators = []string{
		"public class", "public static void main", "System.out.println",
		"import java.", "private ", "protected ", "public ", "extends ", "implements ",
		"@Override", "class ", "interface ", "package ", "throws ", "throw new",
	}
	cppIndicators = []string{
		"#include <iostream>", "#include <vector>", "#include <string>", "using namespace std",
		"std::", "cout <<", "cin >>", "::", "class ", "public:", "private:", "protected:",
		"template<", "typename ", "nullptr", "auto ", "constexpr ", "override ", "final ",
	}
	cIndicators = []string{
		"#include <stdio.h>", "#include <stdlib.h>", "#include <string.h>", "#include <math.h>",
		"printf(", "scanf(", "malloc(", "calloc(", "free(", "struct ", "typedef ", "enum ",
		"#define ", "#ifdef ", "#ifndef ", "#endif", "#pragma ", "->", "sizeof(", "strlen(",
	}
	tsIndicators = []string{
		"interface ", "type ", "enum ", "as ", "public ", "private ", "protected ",
		"readonly ", "abstract ", "implements ", "extends ", ": string", ": number",
		": boolean", ": any", ": void", "Array<", "Promise<", "Map<", "Set<", "<>",
		"@", "namespace ", "module ", "declare ", "keyof ", "typeof ", "is ",
	}
	jsIndicators = []string{
		"function ", "=>", "console.log", "const ", "let ", "var ", "return ",
		"if (", "for (", "while (", "switch (", "case ", "break;", "continue;",
		"document.", "window.", "setTimeout", "setInterval", "addEventListener",
		"async ", "await ", "Promise", "async function", "new Promise",
	}
)

// DetectLanguage resolves the document's language. A non-auto hint wins
// unconditionally; otherwise indicator lists are tried in priority
// order, then structural fallbacks, then DefaultLanguage.
func DetectLanguage(code, hint string) Language {
	if hint != "" && strings.ToLower(hint) != LanguageAuto {
		return Language(hint)
	}

	text := strings.TrimSpace(code)
	if text == "" {
		return DefaultLanguage
	}

	ordered := []struct {
		lang       Language
		indicators []string
	}{
		{LangPython, pythonIndicators},
		{LangJava, javaIndicators},
		{LangCPP, cppIndicators},
		{LangC, cIndicators},
		{LangTypeScript, tsIndicators},
		{LangJavaScript, jsIndicators},
	}
	for _, c := range ordered {
		for _, ind := range c.indicators {
			if strings.Contains(text, ind) {
				return c.lang
			}
		}
	}

	switch {
	case strings.Contains(text, "{") && strings.Contains(text, "}"):
		return LangJavaScript
	case strings.Contains(text, "def ") || strings.Contains(text, "class "):
		return LangPython
	case strings.Contains(text, "#include"):
		return LangC
	}

	return DefaultLanguage
}

// IsJSLike reports whether the language shares JavaScript's statement
// syntax for semicolon and style checks.
func (l Language) IsJSLike() bool {
	return l == LangJavaScript || l == LangTypeScript
}
