package domain

import "strings"

// Invocation is one external command: name, ordered arguments and working directory.
type Invocation struct {
	Command string
	Args    []string
	Dir     string
}

// NewInvocation creates an Invocation running command with args inside dir.
func NewInvocation(dir, command string, args ...string) Invocation {
	return Invocation{
		Command: command,
		Args:    args,
		Dir:     dir,
	}
}

// String renders the command line the way a user would type it.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, quoteArg(i.Command))
	for _, arg := range i.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
