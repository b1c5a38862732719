/* handlers.go
 * Contains the command handlers. Handlers take the DiscordSession interface so they can be tested with a mock session
 */

package bot

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"bracket-bot/api/api"
	"bracket-bot/api/shared"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// maxMessageLength is the longest message discord accepts
const maxMessageLength = 2000

// commands are the messages the bot responds to
var commands = map[string]bool{
	"$help":     true,
	"$teams":    true,
	"$team":     true,
	"$validate": true,
	"$run":      true,
	"$metas":    true,
	"$tower":    true,
}

// uniqueFlag is the $tower argument that drops opponents fielding more than one member of a kind
const uniqueFlag = "--unique"

// helpMessageHandler handles the $help command
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Bracket Bot v1.0\n")
	res.WriteString("A bracket is a list of team names and `+` markers in postfix order: `A B + C D + +` plays A v B, then C v D, then a final between the two winners\n")
	res.WriteString("`$teams`: shows the registered teams\n")
	res.WriteString("`$team name fire grass water ghost normal`: registers a team with that many members of each kind (at most 6 in total)\n")
	res.WriteString("`$validate bracket`: checks that a bracket is well formed and only uses registered teams\n")
	res.WriteString("`$run bracket`: plays the bracket and shows every match in the order it was played\n")
	res.WriteString("`$metas bracket`: plays the bracket and shows the kinds that were trending for each match\n")
	res.WriteString("`$tower challenger opponent[:lives] ... [--unique]`: the challenger fights the opponents in turn until it loses or every opponent is out of lives (3 by default). `--unique` skips opponents with more than one member of a kind\n")
	res.WriteString("There is fuzzy matching on team names, however you should try and have a close match for the best results\n")
	b.sendLong(session, message.ChannelID, res.String())
}

// teamsHandler handles the $teams command
func (b *Bot) teamsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	teams := b.APIPtr.GetTeams()
	if len(teams) == 0 {
		b.sendLong(session, message.ChannelID, "No teams are registered. Use $team to add one")
		return
	}

	var res strings.Builder
	res.WriteString("Registered teams are:\n")
	for _, team := range teams {
		res.WriteString(fmt.Sprintf("- %s\n", team))
	}
	b.sendLong(session, message.ChannelID, res.String())
}

// addTeamHandler handles the $team command
func (b *Bot) addTeamHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil || len(args) != 6 {
		b.sendLong(session, message.ChannelID, "Usage: `$team name fire grass water ghost normal`")
		return
	}

	spec, err := api.ParseTeamSpec(args[0], args[1:])
	if err == nil {
		err = b.APIPtr.AddTeam(spec)
	}
	if err != nil {
		b.sendLong(session, message.ChannelID, fmt.Sprintf("An error occured adding %s: %s", args[0], err))
		return
	}
	b.sendLong(session, message.ChannelID, fmt.Sprintf("%s has been registered", spec.Name))
}

// validateHandler handles the $validate command
func (b *Bot) validateHandler(session DiscordSession, message *discordgo.MessageCreate) {
	bracket, ok := b.bracketArg(session, message)
	if !ok {
		return
	}
	if err := b.APIPtr.ValidateBracket(bracket); err != nil {
		b.sendLong(session, message.ChannelID, fmt.Sprintf("Invalid bracket: %s", err))
		return
	}
	b.sendLong(session, message.ChannelID, "Bracket is valid")
}

// runHandler handles the $run and $metas commands
func (b *Bot) runHandler(session DiscordSession, message *discordgo.MessageCreate, withMetas bool) {
	bracket, ok := b.bracketArg(session, message)
	if !ok {
		return
	}

	var lines []shared.MatchLine
	var err error
	if withMetas {
		lines, err = b.APIPtr.RunBracketWithMetas(bracket)
	} else {
		lines, err = b.APIPtr.RunBracket(bracket)
	}
	if err != nil {
		if api.IsUserError(err) {
			b.sendLong(session, message.ChannelID, fmt.Sprintf("Invalid bracket: %s", err))
			return
		}
		log.Println(err)
		b.sendLong(session, message.ChannelID, "An unexpected error occured running the bracket")
		return
	}
	b.sendLong(session, message.ChannelID, api.FormatMatches(lines))
}

// towerHandler handles the $tower command
func (b *Bot) towerHandler(session DiscordSession, message *discordgo.MessageCreate) {
	args, err := splitArgs(message.Content)
	if err != nil {
		b.sendLong(session, message.ChannelID, fmt.Sprintf("Could not read command: %s", err))
		return
	}
	unique := len(args) > 0 && args[len(args)-1] == uniqueFlag
	if unique {
		args = args[:len(args)-1]
	}
	if len(args) < 2 {
		b.sendLong(session, message.ChannelID, "Usage: `$tower challenger opponent[:lives] ... [--unique]`")
		return
	}

	opponents, err := api.ParseTowerEntries(args[1:])
	if err != nil {
		b.sendLong(session, message.ChannelID, fmt.Sprintf("Invalid tower: %s", err))
		return
	}
	report, err := b.APIPtr.RunTower(args[0], opponents, unique)
	if err != nil {
		if api.IsUserError(err) {
			b.sendLong(session, message.ChannelID, fmt.Sprintf("Invalid tower: %s", err))
			return
		}
		log.Println(err)
		b.sendLong(session, message.ChannelID, "An unexpected error occured running the tower")
		return
	}
	b.sendLong(session, message.ChannelID, api.FormatTower(report))
}

// bracketArg extracts the bracket from a command, sending a usage message if there is none
func (b *Bot) bracketArg(session DiscordSession, message *discordgo.MessageCreate) (string, bool) {
	args, err := splitArgs(message.Content)
	if err != nil {
		b.sendLong(session, message.ChannelID, fmt.Sprintf("Could not read command: %s", err))
		return "", false
	}
	if len(args) == 0 {
		b.sendLong(session, message.ChannelID, "Usage: `$run A B + C D + +`")
		return "", false
	}
	return strings.Join(args, " "), true
}

// sendLong sends content, split on line boundaries into as many messages as discord needs. A single line longer
// than a message is cut into message sized pieces
func (b *Bot) sendLong(session DiscordSession, channelID string, content string) {
	var chunk strings.Builder
	flush := func() {
		if chunk.Len() > 0 {
			session.ChannelMessageSend(channelID, chunk.String())
			chunk.Reset()
		}
	}
	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > maxMessageLength {
			flush()
			cut := maxMessageLength
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			session.ChannelMessageSend(channelID, line[:cut])
			line = line[cut:]
		}
		if chunk.Len()+len(line) > maxMessageLength {
			flush()
		}
		chunk.WriteString(line)
	}
	flush()
}

// splitArgs returns the arguments of a command, without the command itself. Arguments in double quotes are kept
// together and have their quotes removed
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(strings.TrimSpace(content))
	if err != nil {
		return nil, err
	}

	var args []string
	for _, part := range parts[min(1, len(parts)):] {
		part = strings.TrimSpace(strings.Trim(part, "\"“”"))
		if part != "" {
			args = append(args, part)
		}
	}
	return args, nil
}

// newMessageHandler routes messages to the appropriate handler
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID {
		return
	}
	if !startsWith(message.Content, "$") {
		return
	}

	command := strings.Fields(message.Content)[0]
	if !commands[command] {
		return
	}
	if !b.allow(message.Author.ID) {
		b.sendLong(session, message.ChannelID, fmt.Sprintf("%s is sending commands too quickly, try again shortly", message.Author.Username))
		return
	}

	// Route to appropriate handler
	switch command {
	case "$help":
		b.helpMessageHandler(session, message)

	case "$teams":
		b.teamsHandler(session, message)

	case "$team":
		b.addTeamHandler(session, message)

	case "$validate":
		b.validateHandler(session, message)

	case "$run":
		b.runHandler(session, message, false)

	case "$metas":
		b.runHandler(session, message, true)

	case "$tower":
		b.towerHandler(session, message)
	}
}
