package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/liondance/show-manager/internal/domain"
)

// ClockLayout is the storage format for clock times ("15:04"). Zero-padded
// 24h strings keep MIN() over round times correct at the SQL level.
const ClockLayout = "15:04"

// User is a login identity. Each User has exactly one Member profile,
// created alongside it.
type User struct {
	ID        int64     `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Member is a club member profile. School and class year are optional
// (-1 when unset); deleting a Member deletes its User.
type Member struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Position  int       `json:"position" db:"position"`
	School    int       `json:"school" db:"school"`
	ClassYear int       `json:"class_year" db:"class_year"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Contact is a client contact that booked one or more shows.
type Contact struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	Phone     string `json:"phone" db:"phone"`
	Email     string `json:"email" db:"email"`
}

func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Show is a performance event. Time is derived from the earliest round and
// never set directly. PointID and ContactID are 0 when unset; Date is nil
// when TBD.
type Show struct {
	ID        int64      `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Date      *time.Time `json:"date" db:"date"`
	Time      string     `json:"time" db:"time"`
	Address   string     `json:"address" db:"address"`
	IsCampus  bool       `json:"is_campus" db:"is_campus"`
	Lions     int        `json:"lions" db:"lions"`
	PointID   int64      `json:"point_id" db:"point_id"`
	ContactID int64      `json:"contact_id" db:"contact_id"`
	Status    int        `json:"status" db:"status"`
	Priority  int        `json:"priority" db:"priority"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// IsPublished reports whether the show has left draft (published or closed).
func (s *Show) IsPublished() bool {
	return s.Status > domain.StatusDraft
}

// IsOpen reports whether the show is still open for performer signups.
func (s *Show) IsOpen() bool {
	return s.Status == domain.StatusPublished
}

// DayOfWeek returns the show date's weekday as "MON".."SUN", or "" when TBD.
func (s *Show) DayOfWeek() string {
	if s.Date == nil {
		return ""
	}
	return strings.ToUpper(s.Date.Format("Mon"))
}

// FormattedDate returns the show date as "01/02", or "" when TBD.
func (s *Show) FormattedDate() string {
	if s.Date == nil {
		return ""
	}
	return s.Date.Format("01/02")
}

// FormattedTime returns the show time as "3:04 PM", or "" when TBD.
func (s *Show) FormattedTime() string {
	if s.Time == "" {
		return ""
	}
	t, err := time.Parse(ClockLayout, s.Time)
	if err != nil {
		return s.Time
	}
	return t.Format("3:04 PM")
}

// DefaultChannelName derives the Slack channel name for the show in the
// format "mm-dd-show-name": date prefix, then the name lowercased with
// punctuation stripped and spaces collapsed to hyphens. Both the name and
// the date must be set.
func (s *Show) DefaultChannelName() (string, error) {
	if s.Name == "" || s.Date == nil {
		return "", fmt.Errorf("show name and date must be set to derive a channel name")
	}
	return fmt.Sprintf("%s-%s", s.Date.Format("01-02"), slugify(s.Name)), nil
}

func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Round is one performance slot of a show. Times are unique per show.
type Round struct {
	ID     int64  `json:"id" db:"id"`
	ShowID int64  `json:"show_id" db:"show_id"`
	Time   string `json:"time" db:"time"`
}

// Role ties a performer to a show with an optional role tag (-1 when
// undecided). A member holds at most one role per show.
type Role struct {
	ID          int64 `json:"id" db:"id"`
	ShowID      int64 `json:"show_id" db:"show_id"`
	PerformerID int64 `json:"performer_id" db:"performer_id"`
	RoleType    int   `json:"role_type" db:"role_type"`
}

// SlackUser maps a Member to its workspace identity. The Slack-assigned
// user ID is the primary key; the record is cascade-deleted with the member.
type SlackUser struct {
	ID       string `json:"id" db:"id"`
	MemberID int64  `json:"member_id" db:"member_id"`
}

// Mention renders the user as a Slack mention token.
func (u *SlackUser) Mention() string {
	return fmt.Sprintf("<@%s>", u.ID)
}

// SlackChannel maps a Show to its workspace conversation. BriefingTS holds
// the Slack ts of the pinned briefing message; empty means no briefing has
// been sent yet.
type SlackChannel struct {
	ID         string `json:"id" db:"id"`
	ShowID     int64  `json:"show_id" db:"show_id"`
	BriefingTS string `json:"briefing_ts" db:"briefing_ts"`
}
