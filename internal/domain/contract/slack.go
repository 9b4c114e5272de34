package contract

import (
	"github.com/slack-go/slack"

	"github.com/liondance/show-manager/internal/slackboss"
)

// SlackBoss is the Slack operations surface the services depend on.
// *slackboss.SlackBoss implements it; tests substitute a mock.
type SlackBoss interface {
	FetchUser(ref slackboss.EmailRef) (string, error)
	CreateChannel(ref slackboss.ChannelNameRef) (string, error)
	RenameChannel(ref slackboss.ChannelRef, name string, checkCurrent bool) (string, error)
	ArchiveChannel(ref slackboss.ChannelRef) error
	InviteUsers(channel slackboss.ChannelRef, users slackboss.UserRef) error
	RemoveUsers(channel slackboss.ChannelRef, users slackboss.UserRef) error
	SendMessage(channel slackboss.ChannelRef, ts string, blocks []slack.Block, text string) (string, bool, error)
	PinMessage(channel slackboss.ChannelRef, ts string) error
}
