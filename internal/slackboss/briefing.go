package slackboss

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/liondance/show-manager/internal/domain/entity"
)

const tbd = "TBD"

// BriefingBlocks renders the show briefing message. pointLabel is the
// already-resolved rendering of the point person: a Slack mention when the
// identity is known, otherwise a plain name, or empty when unassigned.
func BriefingBlocks(show *entity.Show, pointLabel string) []slack.Block {
	date := orTBD(show.FormattedDate())
	clock := orTBD(show.FormattedTime())
	point := orTBD(pointLabel)
	lions := tbd
	if show.Lions > 0 {
		lions = fmt.Sprintf("%d", show.Lions)
	}

	intro := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf(
			"Hi everyone! Thank you for signing up to perform at %s. "+
				"Below is a quick rundown of important information about the show. Please read carefully.",
			show.Name,
		), false, false),
		nil, nil,
	)
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, ":lion_face:  Show Info", true, false),
	)
	info := slack.NewSectionBlock(nil, []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Date:* %s", date), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Time:* %s", clock), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Point Person:* %s", point), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Lions:* %s", lions), false, false),
	}, nil)
	footer := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			"<!channel> Please react :thumbsup: to this message to confirm that you can make it.",
			false, false),
		nil, nil,
	)

	return []slack.Block{intro, header, info, footer}
}

// BriefingText is the notification fallback text for the briefing message.
func BriefingText(show *entity.Show) string {
	return fmt.Sprintf("New show on %s", orTBD(show.FormattedDate()))
}

// UpdateMessageText summarizes which briefing fields changed, e.g.
// "<!channel> The date and the address have been updated."
func UpdateMessageText(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	list := fields[0]
	verb := "has"
	if len(fields) > 1 {
		list = fmt.Sprintf("%s and the %s", strings.Join(fields[:len(fields)-1], ", the "), fields[len(fields)-1])
		verb = "have"
	}
	return fmt.Sprintf("<!channel> The %s %s been updated.", list, verb)
}

// UpdateMessageBlocks renders the update summary as a single section.
func UpdateMessageBlocks(fields []string) []slack.Block {
	return []slack.Block{
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, UpdateMessageText(fields), false, false),
			nil, nil,
		),
	}
}

func orTBD(s string) string {
	if s == "" {
		return tbd
	}
	return s
}
