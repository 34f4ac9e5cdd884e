package dialog

type Size string

const (
	SizeSmall      Size = "sm"
	SizeMedium     Size = "md"
	SizeLarge      Size = "lg"
	SizeExtraLarge Size = "xl"
	SizeFullscreen Size = "fullscreen"
)

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge, SizeFullscreen:
		return true
	}
	return false
}

// Class is the CSS class the shell renders for the size.
func (s Size) Class() string {
	return "dialog-" + string(s)
}

const (
	defaultTitle       = "Dialog"
	defaultConfirmText = "Confirm"
	defaultCancelText  = "Cancel"
)

// Config describes the modal shell. Zero-value strings and sizes fall back to
// the shell defaults when the dialog is opened.
type Config struct {
	Title                string `json:"title"`
	Size                 Size   `json:"size"`
	ShowFooter           bool   `json:"show_footer"`
	HideDefaultButtons   bool   `json:"hide_default_buttons"`
	ConfirmText          string `json:"confirm_text"`
	CancelText           string `json:"cancel_text"`
	CloseOnEscape        bool   `json:"close_on_escape"`
	CloseOnBackdropClick bool   `json:"close_on_backdrop_click"`
}

// DefaultConfig returns the configuration of a shell opened without overrides.
func DefaultConfig() Config {
	return Config{
		Title:                defaultTitle,
		Size:                 SizeMedium,
		ShowFooter:           true,
		HideDefaultButtons:   false,
		ConfirmText:          defaultConfirmText,
		CancelText:           defaultCancelText,
		CloseOnEscape:        true,
		CloseOnBackdropClick: true,
	}
}

func (c Config) normalize() Config {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if !c.Size.Valid() {
		c.Size = SizeMedium
	}
	if c.ConfirmText == "" {
		c.ConfirmText = defaultConfirmText
	}
	if c.CancelText == "" {
		c.CancelText = defaultCancelText
	}
	return c
}
