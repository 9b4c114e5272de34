package slackboss

import (
	"fmt"
	"strings"
	"time"

	"github.com/liondance/show-manager/internal/domain/entity"
)

// Reference variants replace the "identify the target by A, B, or C"
// argument pattern. Exactly one variant of each ref must be set; Resolve
// returns the canonical value plus a human-readable label for logging.

// EmailRef identifies a workspace user by raw email, User, or Member
// (with its User loaded alongside).
type EmailRef struct {
	Email  string
	User   *entity.User
	Member *entity.Member
	// MemberUser is the User owning Member; required with Member.
	MemberUser *entity.User
}

// ByEmail references a workspace user by raw email address.
func ByEmail(email string) EmailRef {
	return EmailRef{Email: email}
}

// ByUser references a workspace user by login identity.
func ByUser(user *entity.User) EmailRef {
	return EmailRef{User: user}
}

// ByMember references a workspace user by club member and its User.
func ByMember(member *entity.Member, user *entity.User) EmailRef {
	return EmailRef{Member: member, MemberUser: user}
}

// Resolve returns the email to look up and a label for logging.
func (r EmailRef) Resolve() (email, label string, err error) {
	switch {
	case r.Email != "":
		return r.Email, r.Email, nil
	case r.User != nil:
		return r.User.Email, r.User.FullName(), nil
	case r.Member != nil:
		if r.MemberUser == nil {
			return "", "", configErrorf("member %d does not have an associated user", r.Member.ID)
		}
		return r.MemberUser.Email, r.MemberUser.FullName(), nil
	}
	return "", "", usageErrorf("at least one of email, user, or member must be specified")
}

// ChannelRef identifies a workspace conversation by raw channel ID or by
// SlackChannel record (with its Show for labeling).
type ChannelRef struct {
	ID      string
	Channel *entity.SlackChannel
	// Show owns Channel; optional, used for the log label.
	Show *entity.Show
}

// ByChannelID references a conversation by raw Slack channel ID.
func ByChannelID(id string) ChannelRef {
	return ChannelRef{ID: id}
}

// ByChannel references a conversation by its SlackChannel record.
func ByChannel(channel *entity.SlackChannel, show *entity.Show) ChannelRef {
	return ChannelRef{Channel: channel, Show: show}
}

// Resolve returns the conversation ID and a label for logging.
func (r ChannelRef) Resolve() (id, label string, err error) {
	switch {
	case r.ID != "":
		return r.ID, r.ID, nil
	case r.Channel != nil:
		if r.Channel.ID == "" {
			return "", "", configErrorf("show %d does not have a Slack channel", r.Channel.ShowID)
		}
		label = r.Channel.ID
		if r.Show != nil {
			if name, nameErr := r.Show.DefaultChannelName(); nameErr == nil {
				label = name
			}
		}
		return r.Channel.ID, label, nil
	}
	return "", "", usageErrorf("at least one of channel ID or channel must be specified")
}

// ChannelNameRef identifies the name for a new conversation, either given
// directly or derived from a show.
type ChannelNameRef struct {
	Name string
	Show *entity.Show
}

// ByChannelName references a conversation name directly.
func ByChannelName(name string) ChannelNameRef {
	return ChannelNameRef{Name: name}
}

// ByShow derives the conversation name from the show's name and date.
func ByShow(show *entity.Show) ChannelNameRef {
	return ChannelNameRef{Show: show}
}

// Resolve returns the channel name and a label for logging.
func (r ChannelNameRef) Resolve() (name, label string, err error) {
	switch {
	case r.Name != "":
		return r.Name, r.Name, nil
	case r.Show != nil:
		name, err = r.Show.DefaultChannelName()
		if err != nil {
			return "", "", usageErrorf("cannot derive channel name: %v", err)
		}
		return name, r.Show.Name, nil
	}
	return "", "", usageErrorf("at least one of name or show must be specified")
}

// UserRef identifies one or more workspace users by raw IDs or SlackUser
// records.
type UserRef struct {
	IDs   []string
	Users []*entity.SlackUser
}

// ByUserIDs references workspace users by raw Slack user IDs.
func ByUserIDs(ids ...string) UserRef {
	return UserRef{IDs: ids}
}

// BySlackUsers references workspace users by their SlackUser records.
func BySlackUsers(users ...*entity.SlackUser) UserRef {
	return UserRef{Users: users}
}

// Resolve returns the user IDs and a label for logging.
func (r UserRef) Resolve() (ids []string, label string, err error) {
	switch {
	case len(r.IDs) > 0:
		return r.IDs, strings.Join(r.IDs, ", "), nil
	case len(r.Users) > 0:
		ids = make([]string, 0, len(r.Users))
		for _, u := range r.Users {
			if u.ID == "" {
				return nil, "", configErrorf("member %d does not have a Slack user", u.MemberID)
			}
			ids = append(ids, u.ID)
		}
		return ids, strings.Join(ids, ", "), nil
	}
	return nil, "", usageErrorf("at least one of user IDs or users must be specified")
}

// ArchiveName builds the unique rename applied before archiving. The
// workspace cannot un-archive bot channels, so archived names embed a
// timestamp to keep the original name free for a future channel.
func ArchiveName(base string, at time.Time) string {
	return fmt.Sprintf("arch-%s-%d-%06d", base, at.Unix(), at.Nanosecond()/1000)
}
