package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liondance/show-manager/internal/domain"
)

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestDefaultChannelName(t *testing.T) {
	tests := []struct {
		name string
		show Show
		want string
	}{
		{
			name: "simple name",
			show: Show{Name: "National Hot Dog Day", Date: date(2022, time.July, 20)},
			want: "07-20-national-hot-dog-day",
		},
		{
			name: "punctuation stripped",
			show: Show{Name: "Lunar New Year @ Quincy!", Date: date(2023, time.January, 22)},
			want: "01-22-lunar-new-year-quincy",
		},
		{
			name: "consecutive separators collapse",
			show: Show{Name: "Mid -- Autumn  Festival", Date: date(2022, time.September, 10)},
			want: "09-10-mid-autumn-festival",
		},
		{
			name: "trailing separator trimmed",
			show: Show{Name: "Grand Opening!", Date: date(2022, time.December, 3)},
			want: "12-03-grand-opening",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.show.DefaultChannelName()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultChannelNameRequiresNameAndDate(t *testing.T) {
	noDate := Show{Name: "National Hot Dog Day"}
	_, err := noDate.DefaultChannelName()
	assert.Error(t, err)

	noName := Show{Date: date(2022, time.July, 20)}
	_, err = noName.DefaultChannelName()
	assert.Error(t, err)
}

func TestShowStatusPredicates(t *testing.T) {
	draft := Show{Status: domain.StatusDraft}
	assert.False(t, draft.IsPublished())
	assert.False(t, draft.IsOpen())

	published := Show{Status: domain.StatusPublished}
	assert.True(t, published.IsPublished())
	assert.True(t, published.IsOpen())

	closed := Show{Status: domain.StatusClosed}
	assert.True(t, closed.IsPublished())
	assert.False(t, closed.IsOpen())
}

func TestShowFormatting(t *testing.T) {
	show := Show{Date: date(2022, time.July, 20), Time: "14:30"}
	assert.Equal(t, "WED", show.DayOfWeek())
	assert.Equal(t, "07/20", show.FormattedDate())
	assert.Equal(t, "2:30 PM", show.FormattedTime())

	tbd := Show{}
	assert.Equal(t, "", tbd.DayOfWeek())
	assert.Equal(t, "", tbd.FormattedDate())
	assert.Equal(t, "", tbd.FormattedTime())
}

func TestFullName(t *testing.T) {
	user := User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", user.FullName())

	firstOnly := User{FirstName: "Ada"}
	assert.Equal(t, "Ada", firstOnly.FullName())
}

func TestSlackUserMention(t *testing.T) {
	user := SlackUser{ID: "U123ABC", MemberID: 7}
	assert.Equal(t, "<@U123ABC>", user.Mention())
}
