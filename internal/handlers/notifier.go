package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

// DiscordNotifier implements contract.Notifier on top of a discordgo
// session. The announcement scheduler hands it structured contest data and
// a channel id; everything about rendering stays here.
type DiscordNotifier struct {
	session *discordgo.Session
}

func NewNotifier(session *discordgo.Session) *DiscordNotifier {
	return &DiscordNotifier{session: session}
}

var _ contract.Notifier = (*DiscordNotifier)(nil)

func (n *DiscordNotifier) PostDailyContests(channelID string, contests []*entity.ContestWithStatus) error {
	var embed *discordgo.MessageEmbed
	if len(contests) == 0 {
		embed = emptyWindowEmbed("No contests scheduled for today. Enjoy the break!")
	} else {
		embed = statusListEmbed("📣 Today's Contest Lineup", contests)
	}

	_, err := n.session.ChannelMessageSendEmbed(channelID, embed)
	if err != nil {
		if isChannelInaccessible(err) {
			return fmt.Errorf("%w: %v", contract.ErrChannelInaccessible, err)
		}
		return fmt.Errorf("failed to send announcement: %w", err)
	}

	return nil
}

// isChannelInaccessible distinguishes a deleted channel or revoked
// permission from transient failures: the former gets no same-day retries.
func isChannelInaccessible(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Response == nil {
		return false
	}
	return restErr.Response.StatusCode == http.StatusForbidden ||
		restErr.Response.StatusCode == http.StatusNotFound
}
