package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/engine"
	"github.com/ShadowPrince001/Labyrinth-Explorer/internal/session"
)

// SessionFactory opens (or reopens) the game session for one chat.
type SessionFactory func(chatID int64) (*session.Session, error)

// Bot bridges Telegram chats and game sessions: each chat gets its own
// session, and replies are plain menu numbers or action IDs.
type Bot struct {
	client       *Client
	newSession   SessionFactory
	sessions     map[int64]*session.Session
	lastUpdateID int
}

// NewBot initializes the bot with a session factory.
func NewBot(token string, factory SessionFactory) *Bot {
	return &Bot{
		client:       NewClient(token),
		newSession:   factory,
		sessions:     make(map[int64]*session.Session),
		lastUpdateID: viper.GetInt("tg_last_update_id"),
	}
}

// Start launches the long-polling loop. It blocks until the context
// is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	log.Printf("Telegram bot started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		updates, err := b.client.GetUpdates(b.lastUpdateID+1, 25)
		if err != nil {
			log.Printf("Error fetching updates: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID > b.lastUpdateID {
				b.lastUpdateID = update.UpdateID
				// Persist last_update_id
				viper.Set("tg_last_update_id", b.lastUpdateID)
				_ = viper.WriteConfig() // Ignore error if config file doesn't exist yet
			}

			if update.Message != nil {
				b.handleMessage(update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(msg *Message) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	sess, ok := b.sessions[msg.Chat.ID]
	if !ok || text == "/start" {
		fresh, err := b.newSession(msg.Chat.ID)
		if err != nil {
			log.Printf("Failed to open session for chat %d: %v", msg.Chat.ID, err)
			b.send(msg.Chat.ID, "The labyrinth is closed for repairs. Try again later.", nil)
			return
		}
		if ok {
			_ = sess.Close()
		}
		b.sessions[msg.Chat.ID] = fresh
		b.reply(msg.Chat.ID, fresh, fresh.Start())
		return
	}

	// Telegram slash-commands double as action IDs.
	text = strings.TrimPrefix(text, "/")

	events, err := sess.Dispatch(text)
	if err != nil {
		b.send(msg.Chat.ID, fmt.Sprintf("Hm. %v", err), keyboardFor(sess.Menu()))
		return
	}
	b.reply(msg.Chat.ID, sess, events)
}

// reply renders a batch of engine events into chat messages. Menus
// arrive numbered, with a matching reply keyboard.
func (b *Bot) reply(chatID int64, sess *session.Session, events []engine.Event) {
	var sb strings.Builder
	flush := func(keyboard [][]string) {
		if sb.Len() == 0 {
			return
		}
		b.send(chatID, sb.String(), keyboard)
		sb.Reset()
	}

	for _, evt := range events {
		switch e := evt.(type) {
		case *engine.DialogueEvent:
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(e.Message())
		case *engine.PromptEvent:
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(e.Prompt)
		case *engine.MenuEvent:
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			if e.Title != "" {
				sb.WriteString(e.Title)
				sb.WriteString("\n")
			}
			for i, item := range e.Items {
				sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, item.Label))
			}
		case *engine.PauseEvent:
			flush(nil)
		}
	}
	flush(keyboardFor(sess.Menu()))
}

// keyboardFor lays menu numbers out three to a row.
func keyboardFor(items []engine.MenuItem) [][]string {
	if len(items) == 0 {
		return nil
	}
	var rows [][]string
	var row []string
	for i := range items {
		row = append(row, fmt.Sprintf("%d", i+1))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func (b *Bot) send(chatID int64, text string, keyboard [][]string) {
	if err := b.client.SendMessage(chatID, text, keyboard); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}
