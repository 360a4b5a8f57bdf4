package codeinput

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iw2rmb/codebox/boxes"
)

const (
	defaultCodeLength = 4
	defaultEmitDelay  = 50 * time.Millisecond
	defaultInputMode  = "tel"
)

// Config configures the code input Model.
//
// Start from DefaultConfig: the zero value disables PrevFocusableAfterClear.
type Config struct {
	// Number of boxes. Non-positive values fall back to the default.
	CodeLength int
	// Characters a box accepts.
	Policy boxes.Policy
	// Mask filled boxes when rendering.
	Hidden bool
	// Backspace on a filled box also moves focus to the previous box.
	PrevFocusableAfterClear bool
	// Clicking any box while the code is complete focuses the last box.
	FocusLastOnClickIfFilled bool
	// Box focused once after the first render. Nil disables initial focus.
	InitialFocusIndex *int
	// Disabled inputs ignore events and refuse focus.
	Disabled bool

	// Initial external code.
	Code string

	// Presentational hints forwarded to platform bridges. The component
	// itself does not interpret them.
	InputMode      string
	Autocapitalize string

	// Delay between a mutation and its emission.
	EmitDelay time.Duration

	KeyMap    KeyMap
	Style     Style
	Clipboard Clipboard
	Logger    *slog.Logger

	OnCodeChanged   func(code string)
	OnCodeCompleted func(code string)
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		CodeLength:              defaultCodeLength,
		Policy:                  boxes.PolicyDigits,
		PrevFocusableAfterClear: true,
		InputMode:               defaultInputMode,
		EmitDelay:               defaultEmitDelay,
		KeyMap:                  DefaultKeyMap(),
		Style:                   DefaultStyle(),
	}
}

// FocusIndex returns a pointer suitable for Config.InitialFocusIndex.
func FocusIndex(i int) *int { return &i }

// CodeFromInt formats a numeric code. Leading zeros are not preserved, so
// codes that may start with 0 should be passed as strings.
func CodeFromInt(n int64) string { return strconv.FormatInt(n, 10) }

// Validate reports configuration errors that would make the input unusable.
func (c Config) Validate() error {
	if c.CodeLength <= 0 {
		return fmt.Errorf("%w: code length must be positive, got %d", ErrInvalidConfig, c.CodeLength)
	}
	if c.InitialFocusIndex != nil {
		if i := *c.InitialFocusIndex; i < 0 || i >= c.CodeLength {
			return fmt.Errorf("%w: initial focus index %d must be in [0, %d)", ErrInvalidConfig, i, c.CodeLength)
		}
	}
	if c.EmitDelay < 0 {
		return fmt.Errorf("%w: emit delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Overrides is a partial Config. Only non-nil fields are applied.
type Overrides struct {
	CodeLength               *int
	Policy                   *boxes.Policy
	Hidden                   *bool
	PrevFocusableAfterClear  *bool
	FocusLastOnClickIfFilled *bool
	InitialFocusIndex        *int
	Disabled                 *bool
	Code                     *string
	InputMode                *string
	Autocapitalize           *string
	EmitDelay                *time.Duration
}

// Merge returns c with every field set in o copied over.
func (c Config) Merge(o Overrides) Config {
	if o.CodeLength != nil {
		c.CodeLength = *o.CodeLength
	}
	if o.Policy != nil {
		c.Policy = *o.Policy
	}
	if o.Hidden != nil {
		c.Hidden = *o.Hidden
	}
	if o.PrevFocusableAfterClear != nil {
		c.PrevFocusableAfterClear = *o.PrevFocusableAfterClear
	}
	if o.FocusLastOnClickIfFilled != nil {
		c.FocusLastOnClickIfFilled = *o.FocusLastOnClickIfFilled
	}
	if o.InitialFocusIndex != nil {
		c.InitialFocusIndex = FocusIndex(*o.InitialFocusIndex)
	}
	if o.Disabled != nil {
		c.Disabled = *o.Disabled
	}
	if o.Code != nil {
		c.Code = *o.Code
	}
	if o.InputMode != nil {
		c.InputMode = *o.InputMode
	}
	if o.Autocapitalize != nil {
		c.Autocapitalize = *o.Autocapitalize
	}
	if o.EmitDelay != nil {
		c.EmitDelay = *o.EmitDelay
	}
	return c
}

func normalizeConfig(c Config) Config {
	if c.CodeLength <= 0 {
		c.CodeLength = defaultCodeLength
	}
	if c.EmitDelay <= 0 {
		c.EmitDelay = defaultEmitDelay
	}
	if c.InputMode == "" {
		c.InputMode = defaultInputMode
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}
