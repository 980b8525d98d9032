package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ibrahimmudassar/SolarCalculate/internal/report"
)

// Discord embed wire types, the subset the report uses.
type Embed struct {
	Title  string       `json:"title"`
	Color  int          `json:"color"`
	Fields []EmbedField `json:"fields,omitempty"`
	Image  *EmbedImage  `json:"image,omitempty"`
	Footer *EmbedFooter `json:"footer,omitempty"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedImage struct {
	URL string `json:"url"`
}

type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url,omitempty"`
}

type webhookPayload struct {
	Embeds []Embed `json:"embeds"`
}

const (
	colorYellow    = 0xFFFF00
	attachmentName = "fig1.png"

	footerText = "Made By Ibby With ❤️"
	footerIcon = "https://avatars.githubusercontent.com/u/22484328?v=4"
)

// BuildEmbed formats a report into the outgoing embed. The output is fully
// determined by the report fields.
func BuildEmbed(rep report.Report) Embed {
	loc := rep.Timezone
	if loc == nil {
		loc = time.UTC
	}

	embed := Embed{
		Title: "Sun Position Today " + rep.Day.Date.Format("2006 01 02"),
		Color: colorYellow,
		Fields: []EmbedField{
			{
				Name:  fmt.Sprintf("Next %s", rep.Next.Kind),
				Value: naturalDelta(rep.GeneratedAt, rep.Next.At),
			},
			{
				Name:  "Daylight Length",
				Value: clockDuration(rep.Day.DayLength()),
			},
			{Name: "Sunrise", Value: rep.Day.Sunrise.In(loc).Format("15:04"), Inline: true},
			{Name: "Solar Noon", Value: rep.Day.SolarNoon.In(loc).Format("15:04"), Inline: true},
			{Name: "Sunset", Value: rep.Day.Sunset.In(loc).Format("15:04"), Inline: true},
		},
		Footer: &EmbedFooter{Text: footerText, IconURL: footerIcon},
	}
	if rep.Chart != nil {
		embed.Image = &EmbedImage{URL: "attachment://" + attachmentName}
	}
	return embed
}

// naturalDelta renders the distance between two instants without an
// ago/from-now suffix, e.g. "3 weeks".
func naturalDelta(now, then time.Time) string {
	return strings.TrimSpace(humanize.RelTime(then, now, "", ""))
}

// clockDuration renders a duration as zero-padded HH:MM:SS.
func clockDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
