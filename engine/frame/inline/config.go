package inline

import (
	"strings"

	"github.com/npillmayer/inlay/core"
	"github.com/npillmayer/inlay/core/dimen"
	"github.com/npillmayer/inlay/engine/frame"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
)

// Configuration keys for inline layout.
const (
	KeyEllipsis        = "inline.ellipsis"          // string replacing overflowing text
	KeyTextJustify     = "inline.text-justify"      // "auto" or "none"
	KeyFirstLineIndent = "inline.first-line-indent" // dimension, e.g. "12pt"
)

// Options are settings for inline layout which are not part of the styles.
type Options struct {
	Ellipsis        string            // used for `text-overflow: ellipsis`
	TextJustify     frame.TextJustify // TextJustifyNone switches off justification altogether
	FirstLineIndent dimen.Dimen       // used if the block style has no text-indent
}

// DefaultOptions returns the options used without any configuration.
func DefaultOptions() Options {
	return Options{
		Ellipsis:    "…",
		TextJustify: frame.TextJustifyAuto,
	}
}

// OptionsFromConfig reads inline layout options from a configuration.
// Keys which are not set keep their default value. Invalid values result in
// an error with code core.EINVALID.
func OptionsFromConfig(conf schuko.Configuration) (Options, error) {
	return optionsFrom(conf.GetString)
}

// GlobalOptions reads inline layout options from the global configuration.
func GlobalOptions() (Options, error) {
	return optionsFrom(gconf.GetString)
}

func optionsFrom(get func(key string) string) (Options, error) {
	opts := DefaultOptions()
	if s := get(KeyEllipsis); s != "" {
		opts.Ellipsis = s
	}
	switch s := strings.TrimSpace(strings.ToLower(get(KeyTextJustify))); s {
	case "", "auto":
	case "none":
		opts.TextJustify = frame.TextJustifyNone
	default:
		return DefaultOptions(), core.Error(core.EINVALID, "%s: illegal value %q", KeyTextJustify, s)
	}
	if s := strings.TrimSpace(get(KeyFirstLineIndent)); s != "" {
		d, isPcnt, err := dimen.ParseDimen(s)
		if err != nil {
			return DefaultOptions(), core.WrapError(err, core.EINVALID, "%s: cannot parse %q",
				KeyFirstLineIndent, s)
		}
		if isPcnt {
			return DefaultOptions(), core.Error(core.EINVALID, "%s: percentages not allowed: %q",
				KeyFirstLineIndent, s)
		}
		opts.FirstLineIndent = d
	}
	tracer().Debugf("inline options: ellipsis=%q, text-justify=%v, indent=%v",
		opts.Ellipsis, opts.TextJustify, opts.FirstLineIndent)
	return opts, nil
}
