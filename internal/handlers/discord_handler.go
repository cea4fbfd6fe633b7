package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
)

// DiscordHandler owns the slash-command surface: registration, argument
// parsing, admin gating and rendering. All contest semantics live behind
// the service contracts.
type DiscordHandler struct {
	session   *discordgo.Session
	contests  contract.ContestService
	refresher contract.Refresher
}

func New(session *discordgo.Session, contests contract.ContestService, refresher contract.Refresher) *DiscordHandler {
	return &DiscordHandler{
		session:   session,
		contests:  contests,
		refresher: refresher,
	}
}

// Register overwrites the bot's global application commands and installs the
// interaction handler.
func (h *DiscordHandler) Register() error {
	h.session.AddHandler(h.handleInteraction)

	_, err := h.session.ApplicationCommandBulkOverwrite(h.session.State.User.ID, "", commandDefinitions())
	if err != nil {
		return fmt.Errorf("failed to register application commands: %w", err)
	}

	return nil
}

func platformChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Platforms))
	for _, platform := range domain.Platforms {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  platform.DisplayName(),
			Value: string(platform),
		})
	}
	return choices
}

func commandDefinitions() []*discordgo.ApplicationCommand {
	minDays := float64(1)
	minLimit := float64(1)

	platformOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "platform",
		Description: "Only show contests from this platform",
		Choices:     platformChoices(),
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "contests",
			Description: "Show upcoming programming contests (IST timezone)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "days",
					Description: "Number of days to look ahead (1-30, default 7)",
					MinValue:    &minDays,
					MaxValue:    float64(domain.MaxQueryDays),
				},
				platformOption,
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "limit",
					Description: "Maximum number of contests to show (1-25)",
					MinValue:    &minLimit,
					MaxValue:    float64(domain.MaxQueryLimit),
				},
			},
		},
		{
			Name:        "today",
			Description: "Show today's contests with live status",
			Options:     []*discordgo.ApplicationCommandOption{platformOption},
		},
		{
			Name:        "tomorrow",
			Description: "Show tomorrow's contests",
			Options:     []*discordgo.ApplicationCommandOption{platformOption},
		},
		{
			Name:        "refresh",
			Description: "Force a contest cache refresh (admin only)",
		},
		{
			Name:        "contest-setup",
			Description: "Set the contest announcement channel (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel for daily announcements (default: current channel)",
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
					},
				},
			},
		},
		{
			Name:        "contest-time",
			Description: "Set the daily announcement time in IST (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "Time of day in HH:MM (IST)",
					Required:    true,
				},
			},
		},
		{
			Name:        "ping",
			Description: "Check if the bot is alive",
		},
	}
}

func (h *DiscordHandler) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()

	var response *discordgo.InteractionResponseData
	switch data.Name {
	case "contests":
		response = h.handleContests(i)
	case "today":
		response = h.handleToday(i)
	case "tomorrow":
		response = h.handleTomorrow(i)
	case "refresh":
		h.handleRefresh(s, i)
		return
	case "contest-setup":
		response = h.handleContestSetup(i)
	case "contest-time":
		response = h.handleContestTime(i)
	case "ping":
		response = h.handlePing()
	default:
		response = errorResponse("Unknown command")
	}

	respond(s, i, data.Name, response)
}

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, name string, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Printf("Failed to respond to /%s: %v", name, err)
	}
}

func (h *DiscordHandler) handleContests(i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	opts := optionMap(i)

	days := intOption(opts, "days", 7)
	platform := stringOption(opts, "platform")
	limit := intOption(opts, "limit", 0)

	contests, err := h.contests.ListContests(days, platform, limit)
	if err != nil {
		return userErrorResponse(err)
	}

	if len(contests) == 0 {
		return &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{emptyWindowEmbed(
				fmt.Sprintf("No contests found in the next %d day(s).", days))},
		}
	}

	title := fmt.Sprintf("🏆 Upcoming Contests — next %d day(s)", days)
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{contestListEmbed(title, contests)},
	}
}

func (h *DiscordHandler) handleToday(i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	contests, err := h.contests.Today(stringOption(optionMap(i), "platform"))
	if err != nil {
		return userErrorResponse(err)
	}

	if len(contests) == 0 {
		return &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{emptyWindowEmbed("No contests today.")},
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{statusListEmbed("📅 Today's Contests", contests)},
	}
}

func (h *DiscordHandler) handleTomorrow(i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	contests, err := h.contests.Tomorrow(stringOption(optionMap(i), "platform"))
	if err != nil {
		return userErrorResponse(err)
	}

	if len(contests) == 0 {
		return &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{emptyWindowEmbed("No contests tomorrow.")},
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{statusListEmbed("📅 Tomorrow's Contests", contests)},
	}
}

// handleRefresh acknowledges the interaction before fetching: a full refresh
// can outlast Discord's three second response deadline, so the result goes
// out as a followup message.
func (h *DiscordHandler) handleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		respond(s, i, "refresh", errorResponse("Administrator permission required."))
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Failed to acknowledge /refresh: %v", err)
		return
	}

	data := h.runRefresh()
	_, err = s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: data.Content,
		Embeds:  data.Embeds,
		Flags:   data.Flags,
	})
	if err != nil {
		log.Printf("Failed to send /refresh result: %v", err)
	}
}

func (h *DiscordHandler) runRefresh() *discordgo.InteractionResponseData {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := h.refresher.Refresh(ctx)
	if err != nil {
		return errorResponse("Refresh failed. Check the logs.")
	}

	lines := []string{fmt.Sprintf("Cached %d contests, pruned %d ended ones.", result.Fetched, result.Pruned)}
	if len(result.Failed) > 0 {
		names := make([]string, 0, len(result.Failed))
		for _, platform := range result.Failed {
			names = append(names, platform.DisplayName())
		}
		lines = append(lines, "⚠️ Failed platforms (previous cache kept): "+strings.Join(names, ", "))
	}
	if age, ok, err := h.refresher.CacheAge(); err == nil && ok {
		lines = append(lines, "Cache age: "+domain.FormatDuration(age))
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "🔄 Cache Refreshed",
			Description: strings.Join(lines, "\n"),
			Color:       colorSuccess,
		}},
	}
}

func (h *DiscordHandler) handleContestSetup(i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	if i.GuildID == "" {
		return errorResponse("This command can only be used in servers.")
	}
	if !isAdmin(i) {
		return errorResponse("Administrator permission required.")
	}

	channelID := i.ChannelID
	if opt, ok := optionMap(i)["channel"]; ok {
		channelID = opt.Value.(string)
	}

	if err := h.contests.SetAnnouncementChannel(i.GuildID, channelID); err != nil {
		log.Printf("Failed to set announcement channel for guild %s: %v", i.GuildID, err)
		return errorResponse("Failed to save the configuration.")
	}

	announceAt := domain.DefaultAnnouncementTime
	if cfg, err := h.contests.GetGuildConfig(i.GuildID); err == nil && cfg != nil {
		announceAt = cfg.AnnouncementTime
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title: "✅ Contest Channel Configured",
			Description: fmt.Sprintf("Daily contest announcements will be sent to <#%s> at %s IST.",
				channelID, announceAt),
			Color: colorSuccess,
		}},
	}
}

func (h *DiscordHandler) handleContestTime(i *discordgo.InteractionCreate) *discordgo.InteractionResponseData {
	if i.GuildID == "" {
		return errorResponse("This command can only be used in servers.")
	}
	if !isAdmin(i) {
		return errorResponse("Administrator permission required.")
	}

	hhmm := stringOption(optionMap(i), "time")
	if err := h.contests.SetAnnouncementTime(i.GuildID, hhmm); err != nil {
		return userErrorResponse(err)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "✅ Announcement Time Updated",
			Description: fmt.Sprintf("Daily announcements will be posted at %s IST.", hhmm),
			Color:       colorSuccess,
		}},
	}
}

func (h *DiscordHandler) handlePing() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf("🏓 Pong! Heartbeat latency: %dms", h.session.HeartbeatLatency().Milliseconds()),
	}
}

// isAdmin gates the configuration and refresh commands on the Discord
// Administrator permission bit.
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func intOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, fallback int) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func errorResponse(message string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: "❌ " + message,
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

// userErrorResponse renders validation errors back to the caller; anything
// else is an internal fault worth logging but not worth showing verbatim.
func userErrorResponse(err error) *discordgo.InteractionResponseData {
	switch {
	case errors.Is(err, domain.ErrInvalidPlatform),
		errors.Is(err, domain.ErrDaysOutOfRange),
		errors.Is(err, domain.ErrLimitOutOfRange),
		errors.Is(err, domain.ErrInvalidTime):
		return errorResponse(err.Error())
	default:
		log.Printf("Command failed: %v", err)
		return errorResponse("Something went wrong. Please try again later.")
	}
}
