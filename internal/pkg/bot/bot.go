// Package bot is the Telegram transport: it decodes inbound updates into
// commands once, dispatches them and delivers the replies.
package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sneezelab/SneezeBot/app/repository"
)

// Bot wraps the Telegram API client and the command handler.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

// New connects to the Telegram API with the given token.
func New(token string, repos *repository.Repositories, admins map[int64]struct{}) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)
	return &Bot{
		api:     api,
		handler: NewHandler(repos.Sneeze, admins),
	}, nil
}

// Run long-polls for updates until the update channel closes. Each update
// is handled to completion; handler errors never stop the loop.
func (b *Bot) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	log.Println("Bot started...")
	for update := range b.api.GetUpdatesChan(u) {
		b.process(update)
	}
}

func (b *Bot) process(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	cmd := Decode(msg)
	// The reference "today" is the message timestamp, not server time.
	reply := b.handler.Handle(cmd, msg.From.ID, msg.Time())
	if reply.Empty() {
		return
	}

	if err := b.send(msg.Chat.ID, reply); err != nil {
		log.Printf("Failed to send reply to chat %d: %v", msg.Chat.ID, err)
	}
}

func (b *Bot) send(chatID int64, reply Reply) error {
	switch {
	case len(reply.Photo) > 0:
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
			Name:  "chart.png",
			Bytes: reply.Photo,
		})
		photo.Caption = reply.Caption
		photo.ReplyMarkup = replyKeyboard()
		_, err := b.api.Send(photo)
		return err
	case len(reply.Document) > 0:
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
			Name:  reply.DocumentName,
			Bytes: reply.Document,
		})
		doc.Caption = reply.Caption
		_, err := b.api.Send(doc)
		return err
	default:
		out := tgbotapi.NewMessage(chatID, reply.Text)
		out.ReplyMarkup = replyKeyboard()
		_, err := b.api.Send(out)
		return err
	}
}
