// Package render displays played scripts: in a terminal, or recorded for
// surfaces that reply in one piece.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/BerylCAtieno/marketing-super-agent/internal/models"
	"github.com/BerylCAtieno/marketing-super-agent/internal/session"
	"github.com/BerylCAtieno/marketing-super-agent/internal/superagent"
)

// Terminal writes events as styled text.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	md       *glamour.TermRenderer
	thoughts bool
}

type Option func(*terminalOptions)

type terminalOptions struct {
	markdownWidth int
	thoughts      bool
}

// WithMarkdown renders agent replies as markdown wrapped at width.
func WithMarkdown(width int) Option {
	return func(o *terminalOptions) { o.markdownWidth = width }
}

// WithThoughts prints the offered thought process inline.
func WithThoughts() Option {
	return func(o *terminalOptions) { o.thoughts = true }
}

func NewTerminal(w io.Writer, opts ...Option) (*Terminal, error) {
	var o terminalOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := &Terminal{w: w, thoughts: o.thoughts}
	if o.markdownWidth > 0 {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(o.markdownWidth),
		)
		if err != nil {
			return nil, fmt.Errorf("create markdown renderer: %w", err)
		}
		t.md = md
	}
	return t, nil
}

func (t *Terminal) Render(_ context.Context, ev superagent.Event) error {
	out := t.format(ev)
	if out == "" {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.w, out)
	return err
}

func (t *Terminal) format(ev superagent.Event) string {
	var b strings.Builder

	switch ev.Kind {
	case superagent.KindMessage:
		if ev.Message == nil {
			return ""
		}
		t.message(&b, *ev.Message)

	case superagent.KindProgressStarted:
		fmt.Fprintf(&b, "%s\n", heading.Render(fmt.Sprintf("Activating %d specialist agents", len(ev.Agents))))
		for _, a := range ev.Agents {
			fmt.Fprintf(&b, "  %s %s\n", textMuted.Render(symbolPending), a)
		}

	case superagent.KindAgentStep:
		switch ev.Status {
		case session.StepWorking:
			fmt.Fprintf(&b, "  %s %s\n", textWork.Render(symbolWorking), ev.Agent)
		case session.StepCompleted:
			fmt.Fprintf(&b, "  %s %s: %s\n", textDone.Render(symbolDone), ev.Agent, ev.Task)
		}

	case superagent.KindAgentsActivated:
		fmt.Fprintf(&b, "%s\n", textMuted.Render("["+ev.StatusLine+"]"))

	case superagent.KindThoughtsOffered:
		if len(ev.Thoughts) == 0 {
			return ""
		}
		fmt.Fprintf(&b, "%s %s\n", symbolThought, textMuted.Render(fmt.Sprintf("Thought process from %d agents", len(ev.Thoughts))))
		if t.thoughts {
			for _, tp := range ev.Thoughts {
				fmt.Fprintf(&b, "  %s\n", heading.Render(tp.Agent))
				for _, step := range tp.Thoughts {
					fmt.Fprintf(&b, "    - %s\n", step)
				}
			}
		}

	case superagent.KindFollowUps:
		fmt.Fprintf(&b, "%s\n", heading.Render("Suggested follow-ups:"))
		for i, s := range ev.Suggestions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}

	case superagent.KindToolOpened:
		if ev.Tool == nil {
			return ""
		}
		body := heading.Render(ev.Tool.Title) + "\n" + ev.Tool.Action + "\n" + textMuted.Render(ev.Tool.Description)
		fmt.Fprintf(&b, "%s\n", modal.Render(body))

	case superagent.KindToolClosed:
		fmt.Fprintf(&b, "%s\n", textMuted.Render("tool closed"))

	case superagent.KindBuilderOpened:
		fmt.Fprintf(&b, "%s %s\n", heading.Render("Building campaign:"), ev.Text)

	case superagent.KindBuilderProgress:
		fmt.Fprintf(&b, "  %s %3d%% %s\n", progressBar(ev.Percent), ev.Percent, ev.Text)
	}

	return b.String()
}

func (t *Terminal) message(b *strings.Builder, msg models.MessageRecord) {
	if msg.Sender == models.SenderUser {
		fmt.Fprintf(b, "\n%s %s\n", userLabel.Render("You:"), msg.Content)
		return
	}

	name := msg.AgentName
	if name == "" {
		name = models.DefaultAgentName
	}
	fmt.Fprintf(b, "%s\n", agentLabel.Render(name+":"))

	if t.md != nil {
		if rendered, err := t.md.Render(msg.Content); err == nil {
			b.WriteString(rendered)
			return
		}
	}
	fmt.Fprintf(b, "%s\n", msg.Content)
}

func progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * barWidth / 100
	bar := strings.Repeat(" ", barWidth-filled)
	if filled > 0 {
		bar = textDone.Render(strings.Repeat("#", filled)) + bar
	}
	return "[" + bar + "]"
}
