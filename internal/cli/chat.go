package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/marketing-super-agent/internal/catalog"
	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/render"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

const chatHelp = `Type a marketing request, or one of:
  /click <agent>      introduce an agent (research, creative, journey, ...)
  /action <name>      send a quick action prompt
  /tool <name>        open a campaign tool
  /cmd <name>         press a response action button
  /campaign <text>    run the campaign builder
  /thoughts           show the latest thought process
  /help               show this help
  /quit               leave`

var (
	chatPace     float64
	chatMarkdown int
	chatThoughts bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the super agent in the terminal",
	Long: `Start an interactive chat session. Replies are played with the same
timing as the web experience unless --pace is lowered.

Examples:
  superagent chat
  superagent chat --pace 0 --markdown 0`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().Float64Var(&chatPace, "pace", 1, "Delay multiplier; 0 plays replies instantly")
	chatCmd.Flags().IntVar(&chatMarkdown, "markdown", 80, "Render replies as markdown at this width; 0 prints raw text")
	chatCmd.Flags().BoolVar(&chatThoughts, "thoughts", false, "Print each agent's thought process")
}

func runChat(cmd *cobra.Command, args []string) error {
	if chatPace < 0 {
		return fmt.Errorf("--pace must not be negative: %w", models.ErrInvalidInput)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var opts []render.Option
	if chatMarkdown > 0 {
		opts = append(opts, render.WithMarkdown(chatMarkdown))
	}
	if chatThoughts {
		opts = append(opts, render.WithThoughts())
	}
	out := cmd.OutOrStdout()
	term, err := render.NewTerminal(out, opts...)
	if err != nil {
		return err
	}

	store, err := session.NewStore(1)
	if err != nil {
		return err
	}
	svc := superagent.NewService(store, superagent.WithPace(chatPace))
	st := svc.StartSession(ctx)

	fmt.Fprintln(out, "Marketing Super Agent. Type /help for commands.")

	c := &chat{svc: svc, sessionID: st.ID, out: out, r: term}
	lines, scanErr := readLines(ctx, cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			line = l
		}
		done, err := c.handle(ctx, line)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if done {
			return nil
		}
	}
}

// readLines scans r on its own goroutine so an interrupt is seen while the
// prompt waits for input. lines is closed at EOF, after any scan error is
// sent on errc.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

type chat struct {
	svc       *superagent.Service
	sessionID string
	out       io.Writer
	r         superagent.Renderer
}

// handle runs one input line and reports whether the chat should end.
func (c *chat) handle(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, "/") {
		_, err := c.svc.SendMessage(ctx, c.sessionID, line, c.r)
		return false, err
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(c.out, chatHelp)
		fmt.Fprintf(c.out, "\nactions:  %s\n", strings.Join(catalog.QuickActions(), ", "))
		fmt.Fprintf(c.out, "tools:    %s\n", strings.Join(catalog.Tools(), ", "))
		fmt.Fprintf(c.out, "commands: %s\n", strings.Join(catalog.Commands(), ", "))
		return false, nil
	case "click":
		return false, c.svc.ClickAgent(ctx, c.sessionID, arg, c.r)
	case "action":
		_, err := c.svc.QuickAction(ctx, c.sessionID, arg, c.r)
		return false, err
	case "tool":
		return false, c.svc.ActivateTool(ctx, c.sessionID, arg, c.r)
	case "cmd":
		return false, c.svc.RunCommand(ctx, c.sessionID, arg, c.r)
	case "campaign":
		_, err := c.svc.StartCampaign(ctx, c.sessionID, arg, c.r)
		return false, err
	case "thoughts":
		return false, c.printThoughts(ctx)
	default:
		return false, fmt.Errorf("unknown command /%s, type /help: %w", name, models.ErrInvalidInput)
	}
}

func (c *chat) printThoughts(ctx context.Context) error {
	tps, ok, err := c.svc.Thoughts(ctx, c.sessionID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(c.out, "No thought process yet.")
		return nil
	}
	for _, tp := range tps {
		fmt.Fprintf(c.out, "%s\n", tp.Agent)
		for _, step := range tp.Thoughts {
			fmt.Fprintf(c.out, "  - %s\n", step)
		}
	}
	return nil
}
