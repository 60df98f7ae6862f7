package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO   = "2006-01-02"
	layoutShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-02-14" or --on="2/14".`)
}

// GetOn resolves the flag to a day, defaulting to today.
func (o *OnOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		// Short form keeps the current year, rolling forward when the day
		// already passed.
		t, err = time.Parse(layoutShort, o.OnString)
		if err != nil {
			return time.Time{}, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return t, nil
}
