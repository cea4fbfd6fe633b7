package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

const (
	colorSuccess = 0x27ae60
	colorInfo    = 0x3498db
	colorEmpty   = 0xe74c3c

	embedFooter = "All times in IST • Data from clist.by"

	// Discord rejects embeds with more than 25 fields.
	maxEmbedFields = 25
)

func emptyWindowEmbed(description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📅 No Contests",
		Description: description,
		Color:       colorEmpty,
		Footer:      &discordgo.MessageEmbedFooter{Text: embedFooter},
	}
}

// contestListEmbed groups contests by platform, one embed field per
// platform, in the fixed platform order.
func contestListEmbed(title string, contests []*entity.Contest) *discordgo.MessageEmbed {
	byPlatform := make(map[domain.Platform][]*entity.Contest)
	for _, contest := range contests {
		byPlatform[contest.Platform] = append(byPlatform[contest.Platform], contest)
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("Found %d contest(s)", len(contests)),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: embedFooter},
	}

	for _, platform := range domain.Platforms {
		group := byPlatform[platform]
		if len(group) == 0 {
			continue
		}

		entries := make([]string, 0, len(group))
		for _, contest := range group {
			entries = append(entries, renderContest(contest))
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", platform.Emoji(), platform.DisplayName()),
			Value: strings.Join(entries, "\n\n"),
		})
	}

	return embed
}

// statusListEmbed renders one field per contest with its live status line,
// keeping the store's start-time ordering.
func statusListEmbed(title string, contests []*entity.ContestWithStatus) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("Found %d contest(s)", len(contests)),
		Color:       colorInfo,
		Footer:      &discordgo.MessageEmbedFooter{Text: embedFooter},
	}

	for _, annotated := range contests {
		if len(embed.Fields) == maxEmbedFields {
			break
		}

		contest := annotated.Contest
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s %s", contest.Platform.Emoji(), contest.Name),
			Value: renderContestWithStatus(annotated),
		})
	}

	return embed
}

func renderContest(contest *entity.Contest) string {
	text := fmt.Sprintf("**%s**\n🕒 %s\n⏱️ %s",
		contest.Name,
		formatStart(contest.StartTime),
		domain.FormatDuration(contest.Duration()),
	)
	if contest.URL != "" {
		text += fmt.Sprintf("\n🔗 [Link](%s)", contest.URL)
	}
	return text
}

func renderContestWithStatus(annotated *entity.ContestWithStatus) string {
	contest := annotated.Contest

	text := fmt.Sprintf("%s\n🕒 %s\n⏱️ %s",
		statusLine(annotated),
		formatStart(contest.StartTime),
		domain.FormatDuration(contest.Duration()),
	)
	if contest.URL != "" {
		text += fmt.Sprintf("\n🔗 [Link](%s)", contest.URL)
	}
	return text
}

func statusLine(annotated *entity.ContestWithStatus) string {
	delta := domain.FormatDuration(annotated.Delta)

	switch annotated.Status {
	case domain.StatusUpcoming:
		return "⏳ Starts in " + delta
	case domain.StatusRunning:
		return "🟢 Live — " + delta + " remaining"
	default:
		return "🏁 Ended " + delta + " ago"
	}
}

func formatStart(t time.Time) string {
	return t.In(domain.ReferenceLocation()).Format("January 02, 2006 at 03:04 PM") + " IST"
}
