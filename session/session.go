// Package session owns the per-chat picture state: the operation mode, the
// picture-response flag and the host streaming toggles that follow it.
package session

import (
	"context"
	"fmt"

	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/textfilter"
	"github.com/ayunami2000/sdpictures/trigger"
	"github.com/sirupsen/logrus"
)

const (
	FallbackNotice = "no viable description in reply, try regenerating"

	statusSending = "*Is sending a picture...*"
	statusTyping  = "*Is typing...*"
)

// Host is the chat UI the session drives while a picture is pending.
type Host interface {
	NoStream() bool
	SetNoStream(noStream bool)
	SetProcessingMessage(message string)
}

type Generator interface {
	Generate(ctx context.Context, description string) (string, error)
}

type Arbiter interface {
	Activate(ctx context.Context) error
	Deactivate(ctx context.Context) error
}

type Session struct {
	cfg        *config.Store
	normalizer *textfilter.Normalizer
	gen        Generator
	arbiter    Arbiter
	host       Host

	mode     config.Mode
	picture  bool
	noStream bool
}

// New captures the host streaming preference once; later flag changes restore
// this value rather than whatever the host shows at the time.
func New(cfg *config.Store, gen Generator, arbiter Arbiter, host Host) *Session {
	c := cfg.Get()
	s := &Session{
		cfg:        cfg,
		normalizer: textfilter.NewNormalizer(c.FillerWords),
		gen:        gen,
		arbiter:    arbiter,
		host:       host,
		noStream:   host.NoStream(),
	}

	s.SetMode(c.Mode)
	return s
}

func (s *Session) Mode() config.Mode {
	return s.mode
}

func (s *Session) PictureResponse() bool {
	return s.picture
}

func (s *Session) toggle(on bool) {
	s.picture = on
	if on {
		s.host.SetNoStream(true)
		s.host.SetProcessingMessage(statusSending)
	} else {
		s.host.SetNoStream(s.noStream)
		s.host.SetProcessingMessage(statusTyping)
	}

	logrus.WithField("picture", on).Debug("Picture response toggled")
}

// Force makes the next reply a picture.
func (s *Session) Force() {
	s.toggle(true)
}

// Suppress cancels a pending picture.
func (s *Session) Suppress() {
	s.toggle(false)
}

// SetMode switches the operation mode. Picturebook turns the flag on; leaving
// it keeps the flag until the next reply consumes it.
func (s *Session) SetMode(m config.Mode) {
	s.mode = m
	if m == config.ModePicturebook {
		s.toggle(true)
	}

	logrus.WithField("mode", m).Info("Picture mode changed")
}

// SetManageVRAM stores the setting and hands the VRAM to the matching side.
func (s *Session) SetManageVRAM(ctx context.Context, on bool) error {
	s.cfg.Update(func(c *config.Config) {
		c.ManageVRAM = on
	})

	if s.arbiter == nil {
		return nil
	}

	if on {
		return s.arbiter.Activate(ctx)
	}
	return s.arbiter.Deactivate(ctx)
}

// InputModifier rewrites a user message that asks for a picture in
// Interactive mode.
func (s *Session) InputModifier(text string) string {
	if s.mode != config.ModeInteractive || !trigger.HasImageRequest(text) {
		return text
	}

	s.toggle(true)
	return trigger.RewriteRequest(text)
}

// BotPrefixModifier leaves the bot prefix alone.
func (s *Session) BotPrefixModifier(prefix string) string {
	return prefix
}

// OutputModifier turns the reply into a picture when one is pending.
func (s *Session) OutputModifier(ctx context.Context, reply string) (string, error) {
	if !s.picture {
		return reply, nil
	}

	description := textfilter.ScrubReply(reply)
	if description == "" {
		return FallbackNotice, nil
	}

	prompt := description
	if s.cfg.Get().FilterConversational {
		prompt = s.normalizer.Compact(description)
		if prompt == "" {
			return FallbackNotice, nil
		}
	}

	caption := description
	if s.mode < config.ModePicturebook {
		s.toggle(false)
		caption = fmt.Sprintf("*Sends a picture which portrays: “%s”*", description)
	}

	out, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	return out + "\n" + caption, nil
}
