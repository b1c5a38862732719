/* session_interface.go
 * Contains the part of the discord session the command handlers use, so handlers can run against a mock in tests
 */

package bot

import "github.com/bwmarrin/discordgo"

// DiscordSession is implemented by *discordgo.Session and MockDiscordSession. Handlers only ever reply in the
// channel the command came from
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var (
	_ DiscordSession = (*discordgo.Session)(nil)
	_ DiscordSession = (*MockDiscordSession)(nil)
)
