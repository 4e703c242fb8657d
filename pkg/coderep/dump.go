package coderep

import (
	"fmt"
	"strings"
)

// Dump prints the structure of a CodeRep, one node per line. Wrappers are
// shown as their own line so rewrapping mistakes are visible. Attributes
// that are set are listed in brackets after the node name.
func Dump(rep CodeRep) string {
	sb := strings.Builder{}
	dump(&sb, rep, 0)
	return sb.String()
}

func dump(sb *strings.Builder, rep CodeRep, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	switch r := rep.(type) {
	case *Token:
		switch r.TokenKind {
		case TokenRegExp:
			fmt.Fprintf(sb, "RegExp %s", r.Text)
		case TokenRaw:
			fmt.Fprintf(sb, "Raw %q", r.Text)
		default:
			fmt.Fprintf(sb, "Token %s", r.Text)
		}
	case *Number:
		fmt.Fprintf(sb, "Number %s", RenderNumber(r.Value))
	case *Indent:
		fmt.Fprintf(sb, "Indent %q", r.Unit)
	case Wrapper:
		sb.WriteString("Wrapper")
	default:
		name := fmt.Sprintf("%T", rep)
		sb.WriteString(name[strings.LastIndexByte(name, '.')+1:])
	}
	if flags := attrFlags(rep.Attributes()); flags != "" {
		fmt.Fprintf(sb, " [%s]", flags)
	}
	sb.WriteByte('\n')

	if w, ok := rep.(Wrapper); ok {
		dump(sb, w.Unwrap(), depth+1)
		return
	}
	rep.ForEach(func(child CodeRep) {
		dump(sb, child, depth+1)
	})
}

func attrFlags(a *Attrs) string {
	var flags []string
	if a.ContainsIn {
		flags = append(flags, "in")
	}
	if a.ContainsGroup {
		flags = append(flags, "group")
	}
	if a.StartsWithCurly {
		flags = append(flags, "curly")
	}
	if a.StartsWithFunctionOrClass {
		flags = append(flags, "function")
	}
	if a.StartsWithLet {
		flags = append(flags, "let")
	}
	if a.StartsWithLetSquareBracket {
		flags = append(flags, "let[")
	}
	if a.EndsWithMissingElse {
		flags = append(flags, "else")
	}
	return strings.Join(flags, " ")
}
