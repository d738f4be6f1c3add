package commands

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/utils"
)

var VALID_SIZES = []uint64{128, 192, 256, 320, 384, 448, 512, 576, 640, 704, 768, 832, 896, 960, 1024, 1280, 1536, 1792, 2048}
var SizeCommand = command.NewCommand("size", []string{"sz"}, sizeRun)
var ErrInvalidSize = errors.New("invalid size")

func parseSize(sz string) (uint, error) {
	i, err := strconv.ParseUint(sz, 10, 64)
	if err != nil {
		return 0, err
	}

	if !utils.Contains(VALID_SIZES, i) {
		return 0, ErrInvalidSize
	}

	return uint(i), nil
}

func parseSizes(sz string) (uint, uint, error) {
	pieces := strings.Fields(strings.ReplaceAll(strings.ToLower(sz), "x", " "))
	switch len(pieces) {
	case 1:
		i, err := parseSize(pieces[0])
		return i, i, err
	case 2:
		width, err := parseSize(pieces[0])
		if err != nil {
			return width, 0, err
		}

		height, err := parseSize(pieces[1])
		return width, height, err
	default:
		return 0, 0, ErrInvalidSize
	}
}

func sizeRun(cmdctx *command.CommandContext) error {
	if cmdctx.Args == "" {
		cfg := cmdctx.Executor.Config.Get()
		_, err := cmdctx.TryReply(`**Current size:** %dx%d
Sizes: %s`, cfg.Width, cfg.Height, strings.Join(utils.ToStringSlice(VALID_SIZES), ", "))
		return err
	}

	width, height, err := parseSizes(cmdctx.Args)
	if err != nil {
		return err
	}

	cmdctx.Executor.Config.Update(func(c *config.Config) {
		c.Width = width
		c.Height = height
	})

	_, err = cmdctx.TryReply("**Size set to:** %dx%d", width, height)
	return err
}
