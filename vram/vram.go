// Package vram hands accelerator memory back and forth between the host text
// model and the remote image service.
package vram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var ErrUnknownAction = errors.New("unknown VRAM action")

type Action string

const (
	// ActionLoadImageModel unloads the text model, then reloads the image checkpoint.
	ActionLoadImageModel Action = "load-image-model"
	// ActionLoadTextModel unloads the image checkpoint, then reloads the text model.
	ActionLoadTextModel Action = "load-text-model"
	// ActionActivate enters shared mode by vacating the image checkpoint.
	ActionActivate Action = "activate"
	// ActionDeactivate leaves shared mode by reloading the image checkpoint.
	ActionDeactivate Action = "deactivate"
)

var actionAliases = map[string]Action{
	"reserve": ActionLoadImageModel,
	"release": ActionLoadTextModel,
	"set":     ActionActivate,
	"reset":   ActionDeactivate,
}

func ParseAction(s string) (Action, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch a := Action(s); a {
	case ActionLoadImageModel, ActionLoadTextModel, ActionActivate, ActionDeactivate:
		return a, nil
	}

	if a, ok := actionAliases[s]; ok {
		return a, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Remote is the image service side.
type Remote interface {
	UnloadCheckpoint(ctx context.Context) error
	ReloadCheckpoint(ctx context.Context) error
}

// Host is the text model side.
type Host interface {
	LoadModel(ctx context.Context) error
	UnloadModel(ctx context.Context) error
}

type Arbiter struct {
	remote Remote
	host   Host
}

func NewArbiter(remote Remote, host Host) *Arbiter {
	return &Arbiter{remote: remote, host: host}
}

// Do runs a single action. The first failing step aborts the action.
func (a *Arbiter) Do(ctx context.Context, action Action) error {
	log := logrus.WithField("action", action)

	switch action {
	case ActionLoadImageModel:
		if err := a.host.UnloadModel(ctx); err != nil {
			return fmt.Errorf("unload text model: %w", err)
		}
		log.Info("Requesting the image service to reload its last checkpoint")
		if err := a.remote.ReloadCheckpoint(ctx); err != nil {
			return fmt.Errorf("reload checkpoint: %w", err)
		}
	case ActionLoadTextModel:
		log.Info("Requesting the image service to vacate VRAM")
		if err := a.remote.UnloadCheckpoint(ctx); err != nil {
			return fmt.Errorf("unload checkpoint: %w", err)
		}
		if err := a.host.LoadModel(ctx); err != nil {
			return fmt.Errorf("reload text model: %w", err)
		}
	case ActionActivate:
		log.Info("VRAM management activated, requesting the image service to vacate VRAM")
		if err := a.remote.UnloadCheckpoint(ctx); err != nil {
			return fmt.Errorf("unload checkpoint: %w", err)
		}
	case ActionDeactivate:
		log.Info("VRAM management deactivated, requesting the image service to reload its checkpoint")
		if err := a.remote.ReloadCheckpoint(ctx); err != nil {
			return fmt.Errorf("reload checkpoint: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	return nil
}

// Reserve gives the image service the VRAM for one generation.
func (a *Arbiter) Reserve(ctx context.Context) error {
	return a.Do(ctx, ActionLoadImageModel)
}

// Release hands the VRAM back to the text model.
func (a *Arbiter) Release(ctx context.Context) error {
	return a.Do(ctx, ActionLoadTextModel)
}

func (a *Arbiter) Activate(ctx context.Context) error {
	return a.Do(ctx, ActionActivate)
}

func (a *Arbiter) Deactivate(ctx context.Context) error {
	return a.Do(ctx, ActionDeactivate)
}
