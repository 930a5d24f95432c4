package docdiff

import (
	"encoding/json"
	"html"
	"strings"
)

var spanClass = map[Op]string{
	OpMatch:  "diff-context",
	OpDelete: "diff-removed",
	OpInsert: "diff-added",
}

// HTML renders the merged view as a sequence of spans, one per token, each
// followed by a space. Styling is left to the page: diff-context, diff-removed
// and diff-added are the class names used.
func (r *Result) HTML() string {
	var b strings.Builder
	for _, op := range r.Ops {
		b.WriteString(`<span class="`)
		b.WriteString(spanClass[op.Type])
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(op.Token))
		b.WriteString("</span> ")
	}
	return b.String()
}

// Text renders the merged view in wdiff style: [-removed-] and {+added+}.
func (r *Result) Text() string {
	var b strings.Builder
	for n, op := range r.Ops {
		if n > 0 {
			b.WriteByte(' ')
		}
		switch op.Type {
		case OpDelete:
			b.WriteString("[-")
			b.WriteString(op.Token)
			b.WriteString("-]")
		case OpInsert:
			b.WriteString("{+")
			b.WriteString(op.Token)
			b.WriteString("+}")
		default:
			b.WriteString(op.Token)
		}
	}
	return b.String()
}

type jsonOperation struct {
	Kind  string `json:"kind"`
	Token string `json:"token"`
}

type jsonResult struct {
	Operations    []jsonOperation `json:"operations"`
	InsertedCount int             `json:"insertedCount"`
	DeletedCount  int             `json:"deletedCount"`
	Window        int             `json:"window"`
}

func (r *Result) MarshalJSON() ([]byte, error) {
	out := jsonResult{
		Operations:    make([]jsonOperation, len(r.Ops)),
		InsertedCount: r.Inserted,
		DeletedCount:  r.Deleted,
		Window:        r.Window,
	}
	for n, op := range r.Ops {
		out.Operations[n] = jsonOperation{
			Kind:  strings.ToLower(op.Type.String()),
			Token: op.Token,
		}
	}
	return json.Marshal(out)
}
