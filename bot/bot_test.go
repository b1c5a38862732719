/* bot_test.go
 * Contains unit tests for bot.go helpers
 */

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStartsWith_Command tests a message that opens with a command
func TestStartsWith_Command(t *testing.T) {
	assert.True(t, startsWith("$run Roark Gardenia +", "$run"))
	assert.True(t, startsWith("$metas", "$metas"))
}

// TestStartsWith_CommandLaterInMessage tests that a command part way through a message does not count
func TestStartsWith_CommandLaterInMessage(t *testing.T) {
	assert.False(t, startsWith("please $run Roark Gardenia +", "$run"))
}

// TestStartsWith_LongerPrefix tests when the prefix is longer than the message
func TestStartsWith_LongerPrefix(t *testing.T) {
	assert.False(t, startsWith("$te", "$teams"))
}

// TestStartsWith_Empty tests empty input and prefix
func TestStartsWith_Empty(t *testing.T) {
	assert.True(t, startsWith("$help", ""))
	assert.True(t, startsWith("", ""))
	assert.False(t, startsWith("", "$"))
}

// TestStartsWith_CaseSensitive tests that commands are case sensitive
func TestStartsWith_CaseSensitive(t *testing.T) {
	assert.False(t, startsWith("$RUN A B +", "$run"))
}
