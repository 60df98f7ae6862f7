package reply

import (
	"math/rand"
	"strings"
)

// Canned responses used when no provider is configured or every provider
// failed, keyed by which half of the submission is filled in. The strings
// come from the browser build.
var (
	fallbackBoth = []string{
		"良い点と改善点の両方をお伝えいただき、ありがとうございます！励みになる点は大切にし、改善点は真摯に受け止めて今後の開発に反映させていただきます。",
		"ご意見をありがとうございます。良い点は励みになり、改善点は今後の開発の参考にさせていただきます。",
	}
	fallbackGood = []string{
		"良い点をお伝えいただき、ありがとうございます！励みになります。今後もより良い体験を提供できるよう努めてまいります。",
		"ありがとうございます！いただいたご意見を励みに、より良いアプリを目指してまいります。",
		"ご意見をありがとうございます。ユーザーの皆様に喜んでいただけるよう、これからも改善を続けてまいります。",
	}
	fallbackImprove = []string{
		"改善点をご指摘いただき、ありがとうございます。真摯に受け止め、今後の開発に反映させていただきます。",
		"貴重なご意見をありがとうございます。いただいた改善点を参考に、より良いアプリを目指してまいります。",
		"フィードバックをありがとうございます。今後の開発に活かさせていただきます！",
	}
	fallbackDefault = "フィードバックをありがとうございます。今後の開発に活かさせていただきます！"
)

// Fallback picks a canned response conditioned on which inputs are present.
func Fallback(good, improve string) string {
	hasGood := strings.TrimSpace(good) != ""
	hasImprove := strings.TrimSpace(improve) != ""
	switch {
	case hasGood && hasImprove:
		return fallbackBoth[rand.Intn(len(fallbackBoth))]
	case hasGood:
		return fallbackGood[rand.Intn(len(fallbackGood))]
	case hasImprove:
		return fallbackImprove[rand.Intn(len(fallbackImprove))]
	}
	return fallbackDefault
}
