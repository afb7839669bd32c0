package command

import (
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Wrappers that run another program given as their next argument.
var wrapperCommands = map[string]bool{
	"sudo": true, "env": true, "nohup": true, "time": true, "exec": true,
}

// Built-in shell commands that don't need to be in PATH.
var builtins = map[string]bool{
	"echo": true, "cd": true, "pwd": true, "export": true,
	"source": true, "alias": true, "exit": true, "return": true,
	"set": true, "unset": true, "read": true, "eval": true,
	"exec": true, "trap": true, "wait": true, "kill": true,
	"test": true, "[": true, "[[": true, "if": true, "for": true,
	"while": true, "case": true, "function": true, "time": true,
	".": true, ":": true, "type": true, "ulimit": true, "umask": true,
}

// parserFor returns a parser for shells mvdan.cc/sh understands, or nil.
func parserFor(shell string) *syntax.Parser {
	switch shell {
	case "bash", "zsh", "ksh", "":
		return syntax.NewParser(syntax.Variant(syntax.LangBash))
	case "sh", "dash", "ash":
		return syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	case "mksh":
		return syntax.NewParser(syntax.Variant(syntax.LangMirBSDKorn))
	default:
		return nil
	}
}

// CheckSyntax parses command for the given shell. Shells the parser does not
// know (fish, powershell, cmd) are never reported as invalid.
func CheckSyntax(command, shell string) error {
	parser := parserFor(shell)
	if parser == nil {
		return nil
	}
	_, err := parser.Parse(strings.NewReader(command), "")
	return err
}

// GetFirstTool extracts the first program a command line would run.
func GetFirstTool(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}

	file, err := parserFor("bash").Parse(strings.NewReader(command), "")
	if err != nil {
		return firstToolFields(command)
	}

	tool, done := "", false
	syntax.Walk(file, func(node syntax.Node) bool {
		if done {
			return false
		}
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		done = true
		tool = firstProgram(call.Args)
		return false
	})
	return tool
}

func firstProgram(args []*syntax.Word) string {
	for i, arg := range args {
		word := arg.Lit()
		if word == "" {
			return ""
		}
		if wrapperCommands[word] && i+1 < len(args) {
			next := args[i+1].Lit()
			if next == "" || strings.HasPrefix(next, "-") {
				return word
			}
			continue
		}
		// env FOO=bar cmd
		if i > 0 && args[0].Lit() == "env" && strings.Contains(word, "=") {
			continue
		}
		return word
	}
	return ""
}

// firstToolFields is the whitespace-based fallback for lines the parser rejects.
func firstToolFields(command string) string {
	if strings.HasPrefix(command, "(") || strings.HasPrefix(command, "$") {
		return ""
	}

	parts := strings.Fields(command)
	if len(parts) == 0 {
		return ""
	}

	firstWord := parts[0]
	if wrapperCommands[firstWord] && len(parts) > 1 {
		nextWord := parts[1]
		if nextWord == "|" || nextWord == ">" || nextWord == ">>" ||
			nextWord == "<" || nextWord == "&&" || nextWord == "||" ||
			strings.HasPrefix(nextWord, "-") {
			return firstWord
		}
		return firstToolFields(strings.Join(parts[1:], " "))
	}

	return firstWord
}

// IsToolAvailable checks if a tool is a shell builtin or on PATH.
func IsToolAvailable(tool string) bool {
	if tool == "" || builtins[tool] {
		return true
	}
	_, err := exec.LookPath(tool)
	return err == nil
}
