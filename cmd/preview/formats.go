package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/zctpy/paiban/pkg/render"
)

func printStats(s render.Stats) string {
	kinds := make([]string, 0, len(s.Blocks))
	for k := range s.Blocks {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s %s", color.Cyan.Sprint(s.Blocks[k]), k))
	}
	if len(parts) == 0 {
		parts = append(parts, "empty document")
	}
	return fmt.Sprintf("%s chars · %s", color.Cyan.Sprint(s.Chars), strings.Join(parts, ", "))
}

func printLog(lines []string, limit int) string {
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	output := ""
	for _, l := range lines {
		output += " - " + l + "\n"
	}
	return output
}

func tail(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-(n-3):])
}
