package feedback

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/reply"
	"github.com/kotanikosei/Emo/pkg/store"
)

// Feedback stores a submission and prints the drafted thank-you reply.
type Feedback struct {
	Good    string
	Improve string

	Persistence store.Persistence
	Chain       *reply.Chain
}

func (f *Feedback) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: f.Persistence}

	if _, err := svc.SubmitFeedback(ctx, f.Good, f.Improve); err != nil {
		return err
	}

	answer := reply.Fallback(f.Good, f.Improve)
	if f.Chain != nil {
		answer = f.Chain.Reply(ctx, f.Good, f.Improve)
	}

	pp := printers.PrettyPrint{}
	pp.Title("フィードバックありがとうございます")
	_, _ = fmt.Fprintln(color.Output, answer)
	return nil
}
