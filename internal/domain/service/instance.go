package service

import (
	"github.com/liondance/show-manager/internal/domain/contract"
)

type Instance struct {
	Show    contract.ShowService
	Member  contract.MemberService
	Contact contract.ContactService
}

// NewInstance wires the application services. boss is the single Slack
// wrapper constructed in main; everything that talks to Slack receives it
// by injection.
func NewInstance(dm contract.DataManager, boss contract.SlackBoss) *Instance {
	members := newMember(dm, boss)
	sync := newSync(dm, boss, members)

	return &Instance{
		Show:    newShow(dm, sync),
		Member:  members,
		Contact: newContact(dm),
	}
}
