package database

import (
	"database/sql"
	"fmt"

	"github.com/liondance/show-manager/internal/domain/contract"
	"github.com/liondance/show-manager/internal/domain/entity"
)

// The slack_channels and slack_users tables map domain entities to their
// workspace identities. The UNIQUE constraints on show_id and member_id are
// the lock that prevents two external identities for one domain entity.

type slackChannelRepo struct {
	db dbConn
}

func newSlackChannelRepo(db dbConn) contract.SlackChannelRepo {
	return &slackChannelRepo{db: db}
}

func (r *slackChannelRepo) Create(channel *entity.SlackChannel) error {
	query := `INSERT INTO slack_channels (id, show_id, briefing_ts) VALUES (?, ?, ?)`

	if _, err := r.db.Exec(query, channel.ID, channel.ShowID, channel.BriefingTS); err != nil {
		return fmt.Errorf("failed to create slack channel: %w", err)
	}
	return nil
}

func (r *slackChannelRepo) GetByShowID(showID int64) (*entity.SlackChannel, error) {
	channel := &entity.SlackChannel{}
	query := `SELECT id, show_id, briefing_ts FROM slack_channels WHERE show_id = ?`

	err := r.db.QueryRow(query, showID).Scan(&channel.ID, &channel.ShowID, &channel.BriefingTS)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slack channel: %w", err)
	}

	return channel, nil
}

func (r *slackChannelRepo) Update(channel *entity.SlackChannel) error {
	query := `UPDATE slack_channels SET briefing_ts = ? WHERE id = ?`

	if _, err := r.db.Exec(query, channel.BriefingTS, channel.ID); err != nil {
		return fmt.Errorf("failed to update slack channel: %w", err)
	}
	return nil
}

func (r *slackChannelRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM slack_channels WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete slack channel: %w", err)
	}
	return nil
}

type slackUserRepo struct {
	db dbConn
}

func newSlackUserRepo(db dbConn) contract.SlackUserRepo {
	return &slackUserRepo{db: db}
}

func (r *slackUserRepo) Create(user *entity.SlackUser) error {
	query := `INSERT INTO slack_users (id, member_id) VALUES (?, ?)`

	if _, err := r.db.Exec(query, user.ID, user.MemberID); err != nil {
		return fmt.Errorf("failed to create slack user: %w", err)
	}
	return nil
}

func (r *slackUserRepo) GetByMemberID(memberID int64) (*entity.SlackUser, error) {
	user := &entity.SlackUser{}
	query := `SELECT id, member_id FROM slack_users WHERE member_id = ?`

	err := r.db.QueryRow(query, memberID).Scan(&user.ID, &user.MemberID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slack user: %w", err)
	}

	return user, nil
}

func (r *slackUserRepo) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM slack_users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete slack user: %w", err)
	}
	return nil
}
