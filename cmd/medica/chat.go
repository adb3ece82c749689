package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RishiRohanKalapala/medica/internal/medica/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive analysis session",
	Long: `Chat starts an interactive session over the analysis engine. Each
line of input is analyzed like a single analyze run; the reply carries the
full clinical report plus the literature set retrieved for the input.
Type "exit" or "quit" (or send EOF) to leave.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	session := chat.NewSession(analyzer)
	fmt.Printf("%s\n\n", session.Messages()[0].Content)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("you> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			fmt.Print("you> ")
			continue
		}

		reply, _, err := session.Send(line)
		if errors.Is(err, chat.ErrBusy) {
			fmt.Println("Still analyzing the previous message, try again.")
			fmt.Print("you> ")
			continue
		}
		if err != nil {
			return err
		}

		fmt.Printf("\n%s\n\nyou> ", reply.Content)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read chat input: %w", err)
	}
	return nil
}
