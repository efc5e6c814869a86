package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Kind tags a decoded inbound command.
type Kind int

const (
	Unknown Kind = iota
	Start
	Add
	Stats
	Chart
	Edit
	Today
	AdminStats
	AdminExport
	Sneeze // "🤧 Чихнуть" button: increment today's count
	Number // bare number message, recorded as today's count
)

// Reply-keyboard button labels. They decode to the same commands as the
// slash equivalents.
const (
	ButtonSneeze = "🤧 Чихнуть"
	ButtonStats  = "📊 Статистика"
	ButtonChart  = "📈 График"
	ButtonMenu   = "📋 Меню"
)

// Command is an inbound message decoded once at the transport boundary.
// Handlers never look at raw message text.
type Command struct {
	Kind Kind
	Args []string
}

// Decode classifies an inbound message into a Command. Messages that are
// neither commands, buttons nor numbers decode to Unknown and are ignored.
func Decode(msg *tgbotapi.Message) Command {
	if msg.IsCommand() {
		args := strings.Fields(msg.CommandArguments())
		if len(args) == 0 {
			args = nil
		}
		switch msg.Command() {
		case "start":
			return Command{Kind: Start}
		case "add":
			return Command{Kind: Add, Args: args}
		case "stats":
			return Command{Kind: Stats, Args: args}
		case "chart":
			return Command{Kind: Chart, Args: args}
		case "edit":
			return Command{Kind: Edit, Args: args}
		case "today":
			return Command{Kind: Today}
		case "admin_stats":
			return Command{Kind: AdminStats, Args: args}
		case "admin_export":
			return Command{Kind: AdminExport, Args: args}
		default:
			return Command{Kind: Unknown}
		}
	}

	text := strings.TrimSpace(msg.Text)
	switch text {
	case ButtonSneeze:
		return Command{Kind: Sneeze}
	case ButtonStats:
		return Command{Kind: Stats}
	case ButtonChart:
		return Command{Kind: Chart}
	case ButtonMenu:
		return Command{Kind: Start}
	}

	if _, err := strconv.Atoi(text); err == nil {
		return Command{Kind: Number, Args: []string{text}}
	}
	return Command{Kind: Unknown}
}
