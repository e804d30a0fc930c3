package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// notifier prints transient messages the way a toast would show them
type notifier struct {
	w io.Writer
}

func (n *notifier) Success(message string) {
	fmt.Fprintln(n.w, text.Colors{text.FgGreen}.Sprint("✔ "+message))
}

func (n *notifier) Error(message string) {
	fmt.Fprintln(n.w, text.Colors{text.FgRed}.Sprint("✘ "+message))
}

func fieldLines(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s: %s\n", name, strings.Join(fields[name], ", "))
	}
	return b.String()
}
