package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Kisalay21/familytree/internal/client/models"
)

// Chat lists conversations, seeding one per named family member first.
func (a *App) Chat(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if err := a.chat.SyncFamily(ctx, p.ImmediateFamily); err != nil {
		fmt.Println(err.Error())
		return err
	}

	data, err := a.chat.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if len(data.Conversations) == 0 {
		fmt.Println("No conversations yet.")
		return nil
	}

	for name, conv := range data.Conversations {
		status := ""
		if conv.Status == models.ConversationPending {
			status = " (pending)"
		}
		fmt.Printf("%s%s — %d message(s)\n", name, status, len(conv.Messages))
		for _, m := range conv.Messages {
			fmt.Printf("  [%s] %s: %s\n", m.Timestamp, m.Sender, m.Text)
		}
	}
	return nil
}

func (a *App) Send(ctx context.Context) error {
	out := os.Stdout
	name, err := GetSimpleText(a.reader, "To:", out)
	if err != nil {
		return err
	}
	text, err := GetSimpleText(a.reader, "Message:", out)
	if err != nil {
		return err
	}
	if name == "" || text == "" {
		return nil
	}

	conv, err := a.chat.Send(ctx, name, text)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if conv.Status == models.ConversationPending {
		fmt.Println("Sent. The conversation is pending until they accept.")
	} else {
		fmt.Println("Sent.")
	}
	return nil
}
