package cli

import (
	"context"
	"fmt"
	"os"
)

// Chat sends one prompt to the AI assistant. Logged-out users talk to the
// guest endpoint, which needs no token.
func (a *App) Chat(ctx context.Context) error {
	prompt, err := getSimpleText(a.reader, "Ask the assistant", os.Stdout)
	if err != nil {
		return err
	}

	send := a.chat.GuestSend
	if a.isLoggedIn() {
		send = a.chat.Send
	}

	resp, err := send(ctx, prompt)
	if err != nil {
		fmt.Println("Error:", describe(err))
		return err
	}

	fmt.Println(resp.Response)
	return nil
}
