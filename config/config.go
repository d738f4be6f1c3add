package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ErrInvalidMode = errors.New("invalid mode")

type Mode int

const (
	ModeManual Mode = iota
	ModeInteractive
	ModePicturebook
)

var modeNames = []string{"Manual", "Immersive/Interactive", "Picturebook/Adventure"}

func (m Mode) String() string {
	if !m.Valid() {
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}

	return modeNames[m]
}

func (m Mode) Valid() bool {
	return m >= ModeManual && m <= ModePicturebook
}

// ParseMode accepts the numeric form or any word of the display name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i, err := strconv.Atoi(s); err == nil {
		if m := Mode(i); m.Valid() {
			return m, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, i)
	}

	switch s {
	case "manual":
		return ModeManual, nil
	case "interactive", "immersive":
		return ModeInteractive, nil
	case "picturebook", "adventure":
		return ModePicturebook, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

type Config struct {
	Address    string
	Mode       Mode
	ManageVRAM bool
	SaveImages bool
	OutputRoot string

	Model          string
	PromptPrefix   string
	NegativePrompt string

	Width  uint
	Height uint

	RestoreFaces bool
	Seed         int
	SamplerName  string
	Steps        uint
	CfgScale     float64

	ThumbnailSize        uint
	FilterConversational bool
	FillerWords          []string

	Persona     string
	ChatURL     string
	ChatAPIMode string
	ChatModel   string
	Prefix      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Address", "http://127.0.0.1:7860")
	v.SetDefault("Mode", int(ModeManual))
	v.SetDefault("ManageVRAM", false)
	v.SetDefault("SaveImages", false)
	v.SetDefault("OutputRoot", ".")

	v.SetDefault("Model", "")
	v.SetDefault("PromptPrefix", "(Masterpiece:1.1), detailed, intricate, colorful")
	v.SetDefault("NegativePrompt", "(worst quality, low quality:1.3)")

	v.SetDefault("Width", 512)
	v.SetDefault("Height", 512)

	v.SetDefault("RestoreFaces", false)
	v.SetDefault("Seed", -1)
	v.SetDefault("SamplerName", "DDIM")
	v.SetDefault("Steps", 32)
	v.SetDefault("CfgScale", 7.0)

	v.SetDefault("ThumbnailSize", 300)
	v.SetDefault("FilterConversational", true)
	v.SetDefault("FillerWords", []string{})

	v.SetDefault("Persona", "Assistant")
	v.SetDefault("ChatURL", "http://127.0.0.1:5000")
	v.SetDefault("ChatAPIMode", "kobold")
	v.SetDefault("ChatModel", "")
	v.SetDefault("Prefix", "/")
}

// Default returns the built-in configuration without touching the filesystem.
func Default() Config {
	v := viper.New()
	setDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(err)
	}

	return c
}

var trailingSlashes = regexp.MustCompile(`/+$`)

// FilterAddress normalizes a user supplied service address.
func FilterAddress(address string) string {
	address = strings.TrimSpace(address)
	address = trailingSlashes.ReplaceAllString(address, "")
	if !strings.HasPrefix(address, "http") {
		address = "http://" + address
	}

	return address
}

// Store holds the live configuration. Reloads from the config file arrive on
// the file watcher goroutine, so every access goes through the mutex.
type Store struct {
	mu  sync.Mutex
	cfg Config
	v   *viper.Viper
}

func NewStore(c Config) *Store {
	c.Address = FilterAddress(c.Address)
	return &Store{cfg: c}
}

// Load reads config.json from the working directory, or path when set. A
// missing file is not an error: defaults and the environment apply.
func Load(path string) (*Store, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("json")
	}
	v.SetEnvPrefix("sdpictures")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to open config file: %w", err)
		}
		logrus.Debug("No config file found, using defaults")
	} else if err := v.WriteConfig(); err != nil {
		return nil, fmt.Errorf("unable to write to config file: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	s := NewStore(c)
	s.v = v
	return s, nil
}

// Watch reloads the store whenever the backing file changes.
func (s *Store) Watch() {
	if s.v == nil {
		return
	}

	s.v.OnConfigChange(func(e fsnotify.Event) {
		var c Config
		if err := s.v.Unmarshal(&c); err != nil {
			logrus.WithError(err).WithField("file", e.Name).Warn("Ignoring invalid config change")
			return
		}

		c.Address = FilterAddress(c.Address)
		s.mu.Lock()
		s.cfg = c
		s.mu.Unlock()
		logrus.WithField("file", e.Name).Info("Successfully updated config")
	})
	s.v.WatchConfig()
}

func (s *Store) Get() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Store) Update(fn func(c *Config)) {
	s.mu.Lock()
	fn(&s.cfg)
	s.mu.Unlock()
}
