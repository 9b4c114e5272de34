package database

import (
	"context"
	"fmt"

	"github.com/liondance/show-manager/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	showRepo         contract.ShowRepo
	roundRepo        contract.RoundRepo
	roleRepo         contract.RoleRepo
	memberRepo       contract.MemberRepo
	userRepo         contract.UserRepo
	contactRepo      contract.ContactRepo
	slackChannelRepo contract.SlackChannelRepo
	slackUserRepo    contract.SlackUserRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		showRepo:         newShowRepo(db),
		roundRepo:        newRoundRepo(db),
		roleRepo:         newRoleRepo(db),
		memberRepo:       newMemberRepo(db),
		userRepo:         newUserRepo(db),
		contactRepo:      newContactRepo(db),
		slackChannelRepo: newSlackChannelRepo(db),
		slackUserRepo:    newSlackUserRepo(db),
	}
}

func (i *instance) Show() contract.ShowRepo                 { return i.showRepo }
func (i *instance) Round() contract.RoundRepo               { return i.roundRepo }
func (i *instance) Role() contract.RoleRepo                 { return i.roleRepo }
func (i *instance) Member() contract.MemberRepo             { return i.memberRepo }
func (i *instance) User() contract.UserRepo                 { return i.userRepo }
func (i *instance) Contact() contract.ContactRepo           { return i.contactRepo }
func (i *instance) SlackChannel() contract.SlackChannelRepo { return i.slackChannelRepo }
func (i *instance) SlackUser() contract.SlackUserRepo       { return i.slackUserRepo }

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// Already inside a transaction; reuse it.
		return fn(i)
	}

	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
