package analysis

import (
	"regexp"
	"strings"

	"codesync/internal/models"
)

var (
	pyBlockRe    = regexp.MustCompile(`^(if|elif|else|for|while|def|class|try|except|finally)\s`)
	pyWildcardRe = regexp.MustCompile(`^from\s+\S+\s+import\s+\*`)
	pyPrintRe    = regexp.MustCompile(`^print\s+`)
	pyPrintOKRe  = regexp.MustCompile(`^print\s*\(`)
	pyIndentRe   = regexp.MustCompile(`^\s*`)
)

func scanPython(lines []string) []models.CodeIssue {
	var issues []models.CodeIssue

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lineNo := i + 1

		if pyBlockRe.MatchString(trimmed) && !strings.HasSuffix(trimmed, ":") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing colon after statement",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		if indent := len(pyIndentRe.FindString(line)); indent%2 != 0 {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Inconsistent indentation detected",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}

		if pyWildcardRe.MatchString(trimmed) {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Avoid wildcard imports, import specific items",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}

		// Python 2 style print statement.
		if pyPrintRe.MatchString(trimmed) && !pyPrintOKRe.MatchString(trimmed) {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "print() requires parentheses in Python 3",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}
	}
	return issues
}
