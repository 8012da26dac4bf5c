package analysis

import (
	"fmt"
	"strings"

	"codesync/internal/models"
)

// suggest generates improvement suggestions from whole-input heuristics plus
// the issue count. language must already be normalized.
func suggest(code, language string, issues []models.CodeIssue) []models.Suggestion {
	var out []models.Suggestion

	if language == "javascript" && strings.Contains(code, "var ") {
		out = append(out, models.Suggestion{
			Title:       "Use const/let instead of var",
			Description: "var is function-scoped and can lead to bugs. Use const (default) or let (if reassignment needed).",
			Priority:    priorityHigh,
			Example:     "const count = 5;",
		})
	}

	longLines := 0
	for _, line := range strings.Split(code, "\n") {
		if len(line) > 100 {
			longLines++
		}
	}
	if longLines > 0 {
		out = append(out, models.Suggestion{
			Title:       "Break long lines into multiple lines",
			Description: fmt.Sprintf("You have %d line(s) longer than 100 characters. Long lines are harder to read and maintain. Consider breaking them up.", longLines),
			Priority:    priorityMedium,
			Example:     "// Split long statements across multiple lines",
		})
	}

	if strings.Contains(code, "eval(") {
		out = append(out, models.Suggestion{
			Title:       "SECURITY: Avoid eval()",
			Description: "Using eval() is a major security risk. It can execute arbitrary code. Use safer alternatives like JSON.parse() or Function constructor.",
			Priority:    priorityHigh,
			Example:     "const obj = JSON.parse(jsonString); // Instead of eval()",
		})
	}

	if strings.Contains(code, "innerHTML") {
		out = append(out, models.Suggestion{
			Title:       "SECURITY: Use textContent instead of innerHTML",
			Description: "innerHTML can be vulnerable to XSS attacks if used with untrusted data. Use textContent for plain text or a sanitization library.",
			Priority:    priorityHigh,
			Example:     "element.textContent = userInput;",
		})
	}

	if language == "javascript" {
		if strings.Contains(code, "==") && !strings.Contains(code, "===") {
			out = append(out, models.Suggestion{
				Title:       "Use strict equality (===)",
				Description: "Avoid loose equality (==) which can lead to unexpected type coercion. Always use strict equality (===).",
				Priority:    priorityHigh,
				Example:     "if (x === 5) { ... }",
			})
		}
		if strings.Contains(code, "function") && !strings.Contains(code, "return") {
			out = append(out, models.Suggestion{
				Title:       "Consider adding return statements",
				Description: "Functions should typically return a value. Make sure your functions have appropriate return statements.",
				Priority:    priorityMedium,
				Example:     "return result;",
			})
		}
		if strings.Contains(code, "console.log") {
			out = append(out, models.Suggestion{
				Title:       "Remove console.log() from production code",
				Description: "console.log() statements should be removed before deploying to production. Consider using proper logging frameworks.",
				Priority:    priorityMedium,
				Example:     "logger.info('message'); // Instead of console.log()",
			})
		}
	}

	if language == "python" {
		if strings.Contains(code, "== True") || strings.Contains(code, "== False") {
			out = append(out, models.Suggestion{
				Title:       "Use implicit boolean comparison",
				Description: "Instead of comparing to True/False explicitly, use implicit boolean evaluation.",
				Priority:    priorityMedium,
				Example:     "if is_valid: # Instead of if is_valid == True:",
			})
		}
		if strings.Contains(code, "import *") {
			out = append(out, models.Suggestion{
				Title:       "Avoid wildcard imports",
				Description: "Wildcard imports make code harder to understand and can cause naming conflicts.",
				Priority:    priorityHigh,
				Example:     "from module import function1, function2",
			})
		}
	}

	if len(issues) > 5 {
		out = append([]models.Suggestion{{
			Title:       fmt.Sprintf("Multiple issues found (%d)", len(issues)),
			Description: "Your code has several issues. Start by fixing the most critical errors first, then address warnings.",
			Priority:    priorityHigh,
			Example:     "Review the Errors tab for detailed information",
		}}, out...)
	}
	if len(issues) > 0 {
		out = append(out, models.Suggestion{
			Title:       "Fix errors before testing",
			Description: "Your code has syntax or logical errors. These should be fixed before running or testing the code.",
			Priority:    priorityHigh,
			Example:     "Check the Errors tab above for specific issues",
		})
	}

	return out
}
