// Package analysis implements the stateless code-analysis endpoint backing
// the editor's error/suggestion sidebar: a regex-driven line scan per
// language plus a set of improvement heuristics. It holds no state and knows
// nothing about rooms.
package analysis

import (
	"strings"

	"codesync/internal/models"
)

const (
	severityError   = "error"
	severityWarning = "warning"

	priorityHigh   = "high"
	priorityMedium = "medium"
)

// Analyze scans the code with language-specific heuristics and returns the
// issues found plus generated suggestions.
func Analyze(code, language string) models.AnalyzeResponse {
	issues := scan(code, language)
	return models.AnalyzeResponse{
		Errors:      issues,
		Suggestions: suggest(code, normalize(language), issues),
		HasErrors:   len(issues) > 0,
	}
}

func scan(code, language string) []models.CodeIssue {
	lines := strings.Split(code, "\n")
	switch normalize(language) {
	case "javascript":
		return scanJavaScript(lines)
	case "python":
		return scanPython(lines)
	case "java":
		return scanJava(lines)
	case "cpp":
		return scanCpp(lines, code)
	default:
		return scanGeneric(lines)
	}
}

// normalize folds language aliases; TypeScript is analyzed as JavaScript.
func normalize(language string) string {
	switch language {
	case "typescript", "ts":
		return "javascript"
	default:
		return language
	}
}

// excerpt truncates a line for inclusion in an issue report.
func excerpt(line string) string {
	if len(line) > 50 {
		return line[:50]
	}
	return line
}

// balance returns the open-minus-close count of a bracket pair on one line.
func balance(line, opener, closer string) int {
	return strings.Count(line, opener) - strings.Count(line, closer)
}

// scanGeneric is the fallback for languages without a dedicated scanner: it
// only checks bracket balance across the whole input.
func scanGeneric(lines []string) []models.CodeIssue {
	var issues []models.CodeIssue
	openBraces, openParens := 0, 0

	for _, line := range lines {
		openBraces += balance(line, "{", "}")
		openParens += balance(line, "(", ")")
	}

	if openBraces != 0 {
		kind := "unclosed"
		if openBraces < 0 {
			kind = "extra closing"
		}
		issues = append(issues, models.CodeIssue{
			Line:     len(lines),
			Message:  "Brace mismatch detected (" + kind + ")",
			Severity: severityError,
			Code:     "Check brace matching",
		})
	}
	if openParens != 0 {
		kind := "unclosed"
		if openParens < 0 {
			kind = "extra closing"
		}
		issues = append(issues, models.CodeIssue{
			Line:     len(lines),
			Message:  "Parenthesis mismatch detected (" + kind + ")",
			Severity: severityError,
			Code:     "Check parenthesis matching",
		})
	}
	return issues
}
