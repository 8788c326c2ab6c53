package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/message"
)

// GoalFormField names the goal target form field.
const GoalFormField = "target"

// Landing renders the demo page body with the goal form posting to action.
func Landing(p *message.Printer, tagID int64, action string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<h1>`+templ.EscapeString(p.Sprintf("landing.heading"))+`</h1>`+
				`<p>`+templ.EscapeString(p.Sprintf("landing.body", tagID))+`</p>`+
				`<form method="post" action="`+templ.EscapeString(action)+`">`+
				`<label>`+templ.EscapeString(p.Sprintf("landing.target"))+
				` <input name="`+GoalFormField+`" required></label>`+
				`<button type="submit">`+templ.EscapeString(p.Sprintf("landing.submit"))+`</button>`+
				`</form>`)
		return err
	})
}

// GoalReported renders the confirmation body. report runs during render,
// after the tag in <head> has been mounted.
func GoalReported(p *message.Printer, target string, back string, report func(context.Context)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if report != nil {
			report(ctx)
		}
		_, err := io.WriteString(w,
			`<h1>`+templ.EscapeString(p.Sprintf("goal.heading", target))+`</h1>`+
				`<a href="`+templ.EscapeString(back)+`">`+templ.EscapeString(p.Sprintf("goal.back"))+`</a>`)
		return err
	})
}
