package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) Activity(ctx context.Context) error {
	list, err := a.activities.List(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if len(list) == 0 {
		fmt.Println("No recent activity.")
		return nil
	}

	for _, item := range list {
		when := time.UnixMilli(item.Timestamp).Format("Jan 2 15:04")
		fmt.Printf("[%s] %s %s\n", when, item.Actor, item.Text)
	}
	return nil
}
