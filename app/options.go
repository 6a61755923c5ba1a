package app

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultWidth  = 512
	DefaultHeight = 512
	DefaultTitle  = "Graphics Window"
)

// Options tune the window and context created by Host. The zero value is not
// usable; start from DefaultOptions.
type Options struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	ContextMajor int  `toml:"context_major"`
	ContextMinor int  `toml:"context_minor"`
	CoreProfile  bool `toml:"core_profile"`

	// Display refreshes to wait between buffer swaps.
	SwapInterval int `toml:"swap_interval"`
}

func DefaultOptions() Options {
	return Options{
		Title:        DefaultTitle,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		ContextMajor: 3,
		ContextMinor: 2,
		CoreProfile:  true,
		SwapInterval: 1,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o == (Options{}) {
		return def
	}
	if o.Title == "" {
		o.Title = def.Title
	}
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	if o.ContextMajor == 0 && o.ContextMinor == 0 {
		o.ContextMajor, o.ContextMinor = def.ContextMajor, def.ContextMinor
		o.CoreProfile = def.CoreProfile
	}
	return o
}

// LoadOptions decodes a TOML document over DefaultOptions.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&opts); err != nil {
		return opts, errors.Wrap(err, "decode options")
	}
	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultOptions(), errors.Wrapf(err, "open options %s", path)
	}
	defer f.Close()
	return LoadOptions(f)
}

// Validate rejects options that could never produce a window.
func (o Options) Validate() error {
	if err := validateSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.ContextMajor < 3 || (o.ContextMajor == 3 && o.ContextMinor < 2) {
		return errors.Mark(
			errors.Newf("context version %d.%d is below 3.2", o.ContextMajor, o.ContextMinor),
			ErrInvalidArgument)
	}
	if o.SwapInterval < 0 {
		return errors.Mark(errors.Newf("negative swap interval %d", o.SwapInterval), ErrInvalidArgument)
	}
	return nil
}

func validateSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Mark(
			errors.Newf("window dimensions must be positive, got %dx%d", width, height),
			ErrInvalidArgument)
	}
	return nil
}
