package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

type guildRepo struct {
	db dbConn
}

func newGuildRepo(db dbConn) contract.GuildRepo {
	return &guildRepo{db: db}
}

const guildConfigColumns = `id, guild_id, announcement_channel_id, announcement_time, last_announced_date, created_at, updated_at`

func (r *guildRepo) GetByGuildID(guildID string) (*entity.GuildConfig, error) {
	query := `
		SELECT ` + guildConfigColumns + `
		FROM guild_configs
		WHERE guild_id = ?
	`

	config, err := r.scanOne(r.db.QueryRow(query, guildID))
	if err != nil {
		return nil, fmt.Errorf("failed to get guild config: %w", err)
	}

	return config, nil
}

func (r *guildRepo) Ensure(guildID string) (*entity.GuildConfig, error) {
	config, err := r.GetByGuildID(guildID)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	query := `
		INSERT INTO guild_configs (guild_id, announcement_time)
		VALUES (?, ?)
	`

	if _, err := r.db.Exec(query, guildID, domain.DefaultAnnouncementTime); err != nil {
		return nil, fmt.Errorf("failed to create guild config: %w", err)
	}

	return r.GetByGuildID(guildID)
}

func (r *guildRepo) SetAnnouncementChannel(guildID, channelID string) error {
	query := `
		UPDATE guild_configs SET
			announcement_channel_id = ?,
			updated_at = ?
		WHERE guild_id = ?
	`

	_, err := r.db.Exec(query, channelID, time.Now().UTC(), guildID)
	if err != nil {
		return fmt.Errorf("failed to set announcement channel: %w", err)
	}

	return nil
}

func (r *guildRepo) SetAnnouncementTime(guildID, hhmm string) error {
	query := `
		UPDATE guild_configs SET
			announcement_time = ?,
			updated_at = ?
		WHERE guild_id = ?
	`

	_, err := r.db.Exec(query, hhmm, time.Now().UTC(), guildID)
	if err != nil {
		return fmt.Errorf("failed to set announcement time: %w", err)
	}

	return nil
}

func (r *guildRepo) MarkAnnounced(guildID, date string) error {
	query := `
		UPDATE guild_configs SET
			last_announced_date = ?,
			updated_at = ?
		WHERE guild_id = ?
	`

	_, err := r.db.Exec(query, date, time.Now().UTC(), guildID)
	if err != nil {
		return fmt.Errorf("failed to mark announcement sent: %w", err)
	}

	return nil
}

func (r *guildRepo) GetConfigured() ([]*entity.GuildConfig, error) {
	query := `
		SELECT ` + guildConfigColumns + `
		FROM guild_configs
		WHERE announcement_channel_id IS NOT NULL AND announcement_channel_id != ''
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get configured guilds: %w", err)
	}
	defer rows.Close()

	var configs []*entity.GuildConfig
	for rows.Next() {
		config, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guild config: %w", err)
		}
		configs = append(configs, config)
	}

	return configs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *guildRepo) scanOne(row *sql.Row) (*entity.GuildConfig, error) {
	config, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (r *guildRepo) scanRow(row rowScanner) (*entity.GuildConfig, error) {
	config := &entity.GuildConfig{}
	var channelID, lastAnnounced sql.NullString

	err := row.Scan(
		&config.ID,
		&config.GuildID,
		&channelID,
		&config.AnnouncementTime,
		&lastAnnounced,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.AnnouncementChannelID = channelID.String
	config.LastAnnouncedDate = lastAnnounced.String
	return config, nil
}
