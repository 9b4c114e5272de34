// Package slackboss wraps the Slack Web API client with typed operations
// for show channel and member management. Operations stay as close to
// atomic as possible; ordering and persistence decisions belong to the
// callers in internal/domain/service.
package slackboss

import (
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// SlackAPI is the slice of the Slack client the wrapper depends on.
// *slack.Client satisfies it.
type SlackAPI interface {
	GetUserByEmail(email string) (*slack.User, error)
	CreateConversation(params slack.CreateConversationParams) (*slack.Channel, error)
	GetConversationInfo(input *slack.GetConversationInfoInput) (*slack.Channel, error)
	RenameConversation(channelID, channelName string) (*slack.Channel, error)
	ArchiveConversation(channelID string) error
	InviteUsersToConversation(channelID string, users ...string) (*slack.Channel, error)
	KickUserFromConversation(channelID string, user string) error
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)
	UpdateMessage(channelID, timestamp string, options ...slack.MsgOption) (string, string, string, error)
	AddPin(channel string, item slack.ItemRef) error
}

// SlackBoss is the client wrapper. Construct one per process and inject it
// into the services that synchronize shows and members.
type SlackBoss struct {
	api SlackAPI
	log *logrus.Entry
}

func New(api SlackAPI) *SlackBoss {
	return &SlackBoss{
		api: api,
		log: logrus.WithField("component", "slackboss"),
	}
}

// FetchUser looks up the workspace user ID for the referenced email.
// Returns "" without error when the user is not in the workspace.
func (b *SlackBoss) FetchUser(ref EmailRef) (string, error) {
	email, label, err := ref.Resolve()
	if err != nil {
		return "", err
	}
	b.log.Infof("Fetching Slack user for %s ...", label)

	user, err := b.api.GetUserByEmail(email)
	if err != nil {
		if codeIs(err, "users_not_found", "user_not_found") {
			b.log.Warnf("%s is not in the Slack workspace", label)
			return "", nil
		}
		return "", apiError("users.lookupByEmail", err)
	}
	b.log.Infof("Fetched Slack user %s for %s", user.ID, label)
	return user.ID, nil
}

// CreateChannel creates a public conversation with the referenced name and
// returns its ID.
func (b *SlackBoss) CreateChannel(ref ChannelNameRef) (string, error) {
	name, label, err := ref.Resolve()
	if err != nil {
		return "", err
	}
	b.log.Infof("Creating channel for %s ...", label)

	channel, err := b.api.CreateConversation(slack.CreateConversationParams{
		ChannelName: name,
		IsPrivate:   false,
	})
	if err != nil {
		return "", apiError("conversations.create", err)
	}
	b.log.Infof("Created channel %s for %s", channel.ID, label)
	return channel.ID, nil
}

// RenameChannel renames the referenced conversation. With checkCurrent set
// it first compares the live channel name and no-ops on a match, sparing a
// rename call that would fail or churn message history.
func (b *SlackBoss) RenameChannel(ref ChannelRef, name string, checkCurrent bool) (string, error) {
	id, label, err := ref.Resolve()
	if err != nil {
		return "", err
	}
	b.log.Infof("Renaming channel for %s to %s ...", label, name)

	if checkCurrent {
		info, err := b.api.GetConversationInfo(&slack.GetConversationInfoInput{ChannelID: id})
		if err != nil {
			return "", apiError("conversations.info", err)
		}
		if info.Name == name {
			b.log.Infof("Channel for %s is already named %s", label, name)
			return id, nil
		}
	}

	channel, err := b.api.RenameConversation(id, name)
	if err != nil {
		return "", apiError("conversations.rename", err)
	}
	b.log.Infof("Renamed channel %s to %s", channel.ID, name)
	return channel.ID, nil
}

// ArchiveChannel archives the referenced conversation.
func (b *SlackBoss) ArchiveChannel(ref ChannelRef) error {
	id, label, err := ref.Resolve()
	if err != nil {
		return err
	}
	b.log.Infof("Archiving channel for %s ...", label)

	if err := b.api.ArchiveConversation(id); err != nil {
		return apiError("conversations.archive", err)
	}
	b.log.Infof("Archived channel %s", id)
	return nil
}

// InviteUsers invites the referenced users to the referenced conversation.
// Users already in the channel count as success. Invites go out as one bulk
// conversations.invite call (the API accepts a user list); removal has no
// bulk form, so RemoveUsers loops and tolerates per user instead.
func (b *SlackBoss) InviteUsers(channel ChannelRef, users UserRef) error {
	id, channelLabel, err := channel.Resolve()
	if err != nil {
		return err
	}
	ids, userLabel, err := users.Resolve()
	if err != nil {
		return err
	}
	b.log.Infof("Inviting %s to channel for %s ...", userLabel, channelLabel)

	if _, err := b.api.InviteUsersToConversation(id, ids...); err != nil {
		if codeIs(err, "already_in_channel") {
			b.log.Infof("%s is already in the channel for %s", userLabel, channelLabel)
			return nil
		}
		return apiError("conversations.invite", err)
	}
	b.log.Infof("Invited %s to channel %s", userLabel, id)
	return nil
}

// RemoveUsers removes the referenced users from the referenced
// conversation. Users not in the channel count as success.
func (b *SlackBoss) RemoveUsers(channel ChannelRef, users UserRef) error {
	id, channelLabel, err := channel.Resolve()
	if err != nil {
		return err
	}
	ids, userLabel, err := users.Resolve()
	if err != nil {
		return err
	}
	b.log.Infof("Removing %s from channel for %s ...", userLabel, channelLabel)

	for _, userID := range ids {
		if err := b.api.KickUserFromConversation(id, userID); err != nil {
			if codeIs(err, "not_in_channel") {
				b.log.Infof("%s is not in the channel for %s", userID, channelLabel)
				continue
			}
			return apiError("conversations.kick", err)
		}
	}
	b.log.Infof("Removed %s from channel %s", userLabel, id)
	return nil
}

// SendMessage posts or updates a message in the referenced conversation:
// an empty ts posts a new message, a non-empty ts updates it in place.
// Returns the message ts and whether the message was newly created.
func (b *SlackBoss) SendMessage(channel ChannelRef, ts string, blocks []slack.Block, text string) (string, bool, error) {
	id, label, err := channel.Resolve()
	if err != nil {
		return "", false, err
	}

	options := []slack.MsgOption{
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(text, false),
	}

	if ts == "" {
		b.log.Infof("Posting message in channel for %s ...", label)
		_, newTS, err := b.api.PostMessage(id, options...)
		if err != nil {
			return "", false, apiError("chat.postMessage", err)
		}
		b.log.Infof("Posted message %s in channel %s", newTS, id)
		return newTS, true, nil
	}

	b.log.Infof("Updating message %s in channel for %s ...", ts, label)
	_, newTS, _, err := b.api.UpdateMessage(id, ts, options...)
	if err != nil {
		return "", false, apiError("chat.update", err)
	}
	b.log.Infof("Updated message %s in channel %s", newTS, id)
	return newTS, false, nil
}

// PinMessage pins the message with the given ts in the referenced
// conversation. Already-pinned and unpinnable messages count as success.
func (b *SlackBoss) PinMessage(channel ChannelRef, ts string) error {
	id, label, err := channel.Resolve()
	if err != nil {
		return err
	}
	b.log.Infof("Pinning message %s in channel for %s ...", ts, label)

	if err := b.api.AddPin(id, slack.ItemRef{Channel: id, Timestamp: ts}); err != nil {
		if codeIs(err, "already_pinned", "not_pinnable") {
			b.log.Infof("Message %s in channel for %s cannot be pinned again", ts, label)
			return nil
		}
		return apiError("pins.add", err)
	}
	b.log.Infof("Pinned message %s in channel %s", ts, id)
	return nil
}
