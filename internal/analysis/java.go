package analysis

import (
	"regexp"
	"strings"

	"codesync/internal/models"
)

var (
	javaDeclRe   = regexp.MustCompile(`^(int|String|boolean|double|float|char|long|short)\s+\w+\s*=`)
	javaClassRe  = regexp.MustCompile(`^public\s+class\s+\w+`)
	javaMethodRe = regexp.MustCompile(`^public\s+\w+\s+\w+\s*\(`)
)

func scanJava(lines []string) []models.CodeIssue {
	var issues []models.CodeIssue
	openBraces := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		lineNo := i + 1

		openBraces += balance(line, "{", "}")

		if javaDeclRe.MatchString(trimmed) && !strings.HasSuffix(trimmed, ";") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Java statement should end with semicolon",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		if javaClassRe.MatchString(trimmed) && !strings.Contains(trimmed, "{") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing opening brace after class declaration",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		if javaMethodRe.MatchString(trimmed) && !strings.Contains(trimmed, "{") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing opening brace after method declaration",
				Severity: severityError, Code: excerpt(trimmed),
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
