package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"codesync/internal/models"
)

var (
	jsDeclRe      = regexp.MustCompile(`^(var|let|const)\s+(\w+)`)
	jsFuncRe      = regexp.MustCompile(`^function\s+(\w+)`)
	jsArrowRe     = regexp.MustCompile(`^(const|let|var)\s+(\w+)\s*=\s*\(`)
	jsStmtRe      = regexp.MustCompile(`^(var|let|const|return|throw|break|continue)\s`)
	jsControlRe   = regexp.MustCompile(`^(if|else if|for|while|switch|catch)\s*\(`)
	jsFuncDeclRe  = regexp.MustCompile(`^function\s+\w+\s*\(`)
	jsVarRe       = regexp.MustCompile(`^var\s+`)
	jsLooseEqRe   = regexp.MustCompile(`\s==\s`)
	jsEvalRe      = regexp.MustCompile(`\beval\s*\(`)
	jsInnerHTMLRe = regexp.MustCompile(`\.innerHTML\s*=`)
	jsIdentRe     = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
	jsGibberishRe = regexp.MustCompile(`^[a-z]+v[a-z]+$`)
)

// jsGlobals are identifiers a bare reference to which is not reported as
// undefined.
var jsGlobals = map[string]struct{}{
	"console": {}, "window": {}, "document": {}, "JSON": {}, "Math": {},
	"Array": {}, "Object": {}, "String": {}, "Number": {}, "Boolean": {},
	"undefined": {}, "null": {}, "true": {}, "false": {},
}

func scanJavaScript(lines []string) []models.CodeIssue {
	var issues []models.CodeIssue
	openBraces, openParens, openBrackets := 0, 0, 0

	// First pass: collect declared variables and functions so bare
	// identifier lines can be told apart from gibberish.
	declared := map[string]struct{}{}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if m := jsDeclRe.FindStringSubmatch(trimmed); m != nil {
			declared[m[2]] = struct{}{}
		}
		if m := jsFuncRe.FindStringSubmatch(trimmed); m != nil {
			declared[m[1]] = struct{}{}
		}
		if m := jsArrowRe.FindStringSubmatch(trimmed); m != nil {
			declared[m[2]] = struct{}{}
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		lineNo := i + 1

		openBraces += balance(line, "{", "}")
		openParens += balance(line, "(", ")")
		openBrackets += balance(line, "[", "]")

		if jsStmtRe.MatchString(trimmed) &&
			!strings.HasSuffix(trimmed, ";") &&
			!strings.HasSuffix(trimmed, "{") &&
			!strings.HasSuffix(trimmed, ",") &&
			!strings.HasSuffix(trimmed, ")") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing semicolon",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}

		if jsControlRe.MatchString(trimmed) && !strings.Contains(trimmed, "{") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing opening brace after control statement",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		if jsFuncDeclRe.MatchString(trimmed) && !strings.Contains(trimmed, "{") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Missing opening brace after function declaration",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		if jsVarRe.MatchString(trimmed) {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Use 'const' or 'let' instead of 'var'",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}

		if jsLooseEqRe.MatchString(trimmed) && !strings.Contains(trimmed, "===") {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Use strict equality (===) instead of loose equality (==)",
				Severity: severityWarning, Code: excerpt(trimmed),
			})
		}

		if jsEvalRe.MatchString(trimmed) {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Security Risk: eval() is dangerous, use alternative approaches",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		if jsInnerHTMLRe.MatchString(trimmed) {
			issues = append(issues, models.CodeIssue{
				Line: lineNo, Message: "Security Risk: innerHTML can cause XSS attacks, use textContent instead",
				Severity: severityError, Code: excerpt(trimmed),
			})
		}

		// A line that is a single bare identifier is usually a stray
		// reference or typed garbage.
		if jsIdentRe.MatchString(trimmed) && len(trimmed) > 2 {
			_, isDeclared := declared[trimmed]
			_, isGlobal := jsGlobals[trimmed]
			if !isDeclared && !isGlobal {
				issues = append(issues, models.CodeIssue{
					Line:     lineNo,
					Message:  fmt.Sprintf("Undefined variable or gibberish text: '%s' is not recognized", trimmed),
					Severity: severityError, Code: trimmed,
				})
			}
		}

		if jsGibberishRe.MatchString(trimmed) && len(trimmed) > 3 {
			issues = append(issues, models.CodeIssue{
				Line:     lineNo,
				Message:  fmt.Sprintf("Invalid token: '%s' appears to be gibberish or typo", trimmed),
				Severity: severityError, Code: trimmed,
			})
		}
	}

	if openBraces > 0 {
		issues = append(issues, models.CodeIssue{
			Line:     len(lines),
			Message:  fmt.Sprintf("%d unclosed brace(s) detected", openBraces),
			Severity: severityError, Code: "Check brace matching",
		})
	}
	if openParens > 0 {
		issues = append(issues, models.CodeIssue{
			Line:     len(lines),
			Message:  fmt.Sprintf("%d unclosed parenthesis/parentheses detected", openParens),
			Severity: severityError, Code: "Check parenthesis matching",
		})
	}
	if openBrackets > 0 {
		issues = append(issues, models.CodeIssue{
			Line:     len(lines),
			Message:  fmt.Sprintf("%d unclosed bracket(s) detected", openBrackets),
			Severity: severityError, Code: "Check bracket matching",
		})
	}
	return issues
}
