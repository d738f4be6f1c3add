// Package picture asks the image service to draw a description and turns the
// result into chat markup.
package picture

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/sdapi"
	"github.com/sirupsen/logrus"
)

type Txt2Imger interface {
	Txt2Img(ctx context.Context, data *sdapi.Txt2ImgRequest) (*sdapi.Txt2ImgResponse, error)
}

type Arbiter interface {
	Reserve(ctx context.Context) error
	Release(ctx context.Context) error
}

type Generator struct {
	cfg  *config.Store
	api  Txt2Imger
	vram Arbiter
	now  func() time.Time
}

func NewGenerator(cfg *config.Store, api Txt2Imger, vram Arbiter) *Generator {
	return &Generator{cfg: cfg, api: api, vram: vram, now: time.Now}
}

func NewRequest(cfg config.Config, description string) *sdapi.Txt2ImgRequest {
	prompt := description
	if cfg.PromptPrefix != "" {
		prompt = cfg.PromptPrefix + ", " + description
	}

	return &sdapi.Txt2ImgRequest{
		Prompt:         prompt,
		Seed:           cfg.Seed,
		SamplerName:    cfg.SamplerName,
		Steps:          cfg.Steps,
		CfgScale:       cfg.CfgScale,
		Width:          cfg.Width,
		Height:         cfg.Height,
		RestoreFaces:   cfg.RestoreFaces,
		NegativePrompt: cfg.NegativePrompt,
	}
}

// Generate draws description and returns one markup line per image. Either
// every image is rendered or an error is returned with no markup.
func (g *Generator) Generate(ctx context.Context, description string) (result string, err error) {
	cfg := g.cfg.Get()

	if cfg.ManageVRAM && g.vram != nil {
		if err := g.vram.Reserve(ctx); err != nil {
			return "", err
		}
		defer func() {
			if releaseErr := g.vram.Release(ctx); releaseErr != nil {
				err = errors.Join(err, releaseErr)
				result = ""
			}
		}()
	}

	logrus.WithField("address", cfg.Address).Info("Prompting the image generator")

	res, err := g.api.Txt2Img(ctx, NewRequest(cfg, description))
	if err != nil {
		return "", err
	}

	images := make([][]byte, 0, len(res.Images))
	for i, encoded := range res.Images {
		data, err := DecodeImage(encoded)
		if err != nil {
			return "", fmt.Errorf("decode image %d: %w", i, err)
		}
		images = append(images, data)
	}

	var sb strings.Builder
	now := g.now()
	for i, data := range images {
		if cfg.SaveImages {
			path, err := save(cfg, now, i, data)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "[<a target=\"_blank\" href=\"/file/%s\">Attachment</a>]\n", strings.TrimPrefix(filepath.ToSlash(path), "/"))
			continue
		}

		thumb, err := Thumbnail(data, int(cfg.ThumbnailSize))
		if err != nil {
			return "", fmt.Errorf("thumbnail image %d: %w", i, err)
		}
		fmt.Fprintf(&sb, "<img src=\"data:image/jpeg;base64,%s\" alt=\"%s\">\n",
			base64.StdEncoding.EncodeToString(thumb), html.EscapeString(description))
	}

	return sb.String(), nil
}

var personaReplacer = strings.NewReplacer("/", "_", `\`, "_", "..", "_")

// OutputPath is <root>/outputs/<YYYY_MM_DD>/<persona>_<unix>.png. Extra images
// from the same response get an _<n> suffix.
func OutputPath(cfg config.Config, now time.Time, index int) string {
	name := personaReplacer.Replace(cfg.Persona) + "_" + strconv.FormatInt(now.Unix(), 10)
	if index > 0 {
		name += "_" + strconv.Itoa(index)
	}

	return filepath.Join(cfg.OutputRoot, "outputs", now.Format("2006_01_02"), name+".png")
}

func save(cfg config.Config, now time.Time, index int, data []byte) (string, error) {
	path := OutputPath(cfg, now, index)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	logrus.WithField("path", path).Debug("Saved picture")
	return path, nil
}
