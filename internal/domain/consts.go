package domain

// Show statuses. A show leaves draft only once a date is set.
const (
	StatusDraft     = 0
	StatusPublished = 1
	StatusClosed    = 2
)

// StatusNames maps show statuses to their display names
var StatusNames = map[int]string{
	StatusDraft:     "Draft",
	StatusPublished: "Published",
	StatusClosed:    "Closed",
}

// Show priorities
const (
	PriorityFull   = 0
	PriorityNormal = 1
	PriorityUrgent = 2
)

// PriorityNames maps show priorities to their display names
var PriorityNames = map[int]string{
	PriorityFull:   "Full",
	PriorityNormal: "Normal",
	PriorityUrgent: "Urgent",
}

// Club positions
const (
	PositionGeneralMember = 0
	PositionSecretary     = 1
	PositionTreasurer     = 2
	PositionPresident     = 3
	PositionSeniorAdvisor = 4
)

// PositionNames maps club positions to their display names
var PositionNames = map[int]string{
	PositionGeneralMember: "General Member",
	PositionSecretary:     "Secretary",
	PositionTreasurer:     "Treasurer",
	PositionPresident:     "President",
	PositionSeniorAdvisor: "Senior Advisor",
}

// Performance role types
const (
	RoleLion   = 0
	RoleDrum   = 1
	RoleCymbal = 2
	RoleGong   = 3
	RoleMonk   = 4
	RoleOther  = 5
)

// RoleNames maps performance role types to their display names
var RoleNames = map[int]string{
	RoleLion:   "Lion",
	RoleDrum:   "Drum",
	RoleCymbal: "Cymbal",
	RoleGong:   "Gong",
	RoleMonk:   "Monk",
	RoleOther:  "Other",
}

// Watched show fields. A change to any of these refreshes the channel
// briefing; name and date changes additionally rename the channel.
const (
	FieldName    = "name"
	FieldDate    = "date"
	FieldTime    = "time"
	FieldAddress = "address"
	FieldLions   = "lions"
	FieldPoint   = "point person"
)

// WatchedFields lists the watched fields in briefing display order.
var WatchedFields = []string{FieldName, FieldDate, FieldTime, FieldAddress, FieldLions, FieldPoint}
