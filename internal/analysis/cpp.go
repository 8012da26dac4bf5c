package analysis

import (
	"regexp"
	"strings"

	"codesync/internal/models"
)

var (
	cppDeclRe   = regexp.MustCompile(`^(int|void|string|char|double|float)\s+`)
	cppStreamRe = regexp.MustCompile(`cout\s*<<|cin\s*>>`)
)

func scanCpp(lines []string, code string) []models.CodeIssue {
	var issues []models.CodeIssue
	openBraces := 0
	hasIostream := strings.Contains(code, "#include <iostream>")

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		lineNo := i + 1

		openBraces += balance(line, "{", "}")

		if cppDeclRe.MatchString(trimmed) &&
			!strings.HasSuffix(trimmed, ";") &&
			!strings.HasSuffix(trimmed, "{") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "C++ statement should likely end with semicolon",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}

		if cppStreamRe.MatchString(line) && !hasIostream {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing #include <iostream> for cout/cin",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}
	}

	if openBraces > 0 {
		issues = append(issues, models.CodeIssue{
			Line: len(lines), Message: "Unclosed braces detected",
			Severity: severityError, Code: "Check brace matching",
		})
	}
	return issues
}
