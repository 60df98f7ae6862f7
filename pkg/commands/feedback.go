package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/reply"
	"github.com/kotanikosei/Emo/pkg/runner/feedback"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addFeedback(topLevel *cobra.Command) {
	var good, improve string

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Send feedback and get a drafted reply",
		Example: `
emo feedback --good="月表示が見やすい" --improve="週表示がほしい"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if good == "" && improve == "" {
				return errors.New("nothing to send, set --good or --improve")
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			chain := &reply.Chain{Providers: reply.Resolve(reply.Config{
				GeminiKey: cfg.GeminiKey(),
				OpenAIKey: cfg.OpenAIKey(),
				ClaudeKey: cfg.ClaudeKey(),
			})}
			f := feedback.Feedback{
				Good:        good,
				Improve:     improve,
				Persistence: p,
				Chain:       chain,
			}
			return f.Do(context.Background())
		},
	}
	cmd.Flags().StringVar(&good, "good", "", "What worked well.")
	cmd.Flags().StringVar(&improve, "improve", "", "What could be better.")

	topLevel.AddCommand(cmd)
}
