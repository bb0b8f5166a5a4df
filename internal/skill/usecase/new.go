package usecase

import (
	"montblanc-assistant/config"
	"montblanc-assistant/internal/skill"
	"montblanc-assistant/pkg/llmprovider"
	pkgLog "montblanc-assistant/pkg/log"
)

// Budget bounds one completion call.
type Budget struct {
	MaxTokens   int
	Temperature float64
}

// withDefaults fills each unset field from def. An all-zero Budget takes def
// as a whole; otherwise a zero Temperature is a deliberate setting and kept.
func (b Budget) withDefaults(def Budget) Budget {
	if b == (Budget{}) {
		return def
	}
	if b.MaxTokens <= 0 {
		b.MaxTokens = def.MaxTokens
	}
	if b.Temperature < 0 {
		b.Temperature = def.Temperature
	}
	return b
}

// Options are the configurable constants of the skill.
type Options struct {
	CardTitle string
	Ask       Budget
	Translate Budget
}

// DefaultOptions returns the options the skill ships with.
func DefaultOptions() Options {
	return Options{
		CardTitle: DefaultCardTitle,
		Ask:       Budget{MaxTokens: DefaultAskMaxTokens, Temperature: DefaultAskTemperature},
		Translate: Budget{MaxTokens: DefaultTranslateMaxTokens, Temperature: DefaultTranslateTemperature},
	}
}

type implUseCase struct {
	l    pkgLog.Logger
	llm  llmprovider.Generator
	opts Options
}

var _ skill.UseCase = (*implUseCase)(nil)

// New creates a new skill UseCase instance.
func New(l pkgLog.Logger, llm llmprovider.Generator, opts Options) skill.UseCase {
	def := DefaultOptions()
	if opts.CardTitle == "" {
		opts.CardTitle = def.CardTitle
	}
	opts.Ask = opts.Ask.withDefaults(def.Ask)
	opts.Translate = opts.Translate.withDefaults(def.Translate)

	return &implUseCase{
		l:    l,
		llm:  llm,
		opts: opts,
	}
}

// OptionsFromConfig maps the skill configuration section onto Options.
func OptionsFromConfig(cfg config.SkillConfig) Options {
	return Options{
		CardTitle: cfg.CardTitle,
		Ask:       Budget{MaxTokens: cfg.Ask.MaxTokens, Temperature: cfg.Ask.Temperature},
		Translate: Budget{MaxTokens: cfg.Translate.MaxTokens, Temperature: cfg.Translate.Temperature},
	}
}
