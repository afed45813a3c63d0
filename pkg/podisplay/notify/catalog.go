package notify

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs used by the shell.
const (
	MsgDialogNotFound      = "DialogNotFound"
	MsgDialogConfirmed     = "DialogConfirmed"
	MsgFileDownload        = "FileDownloadInitiated"
	MsgNavigatingTo        = "NavigatingTo"
	MsgButtonPressed       = "ButtonPressed"
	MsgPageNotFound        = "PageNotFound"
	MsgDataLoadFailed      = "DataLoadFailed"
	MsgDataLoadFailedTitle = "DataLoadFailedTitle"
	MsgSystemInfoTitle     = "SystemInformationTitle"
	MsgSystemInfoText      = "SystemInformationDescription"
	MsgSystemInfoSubtitle  = "SystemInformationSubtitle"
	MsgSelectValue         = "SelectValue"
	MsgConfirmTitle        = "ConfirmTitle"
	MsgMessagesTitle       = "MessagesTitle"
)

// Catalog localizes shell messages. Lookups never fail: a missing message
// falls back to its ID.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// NewCatalog loads the embedded catalogs and negotiates locale against them.
func NewCatalog(locale string) (*Catalog, error) {
	return NewCatalogFS(localeFS, locale)
}

// NewCatalogFS loads every locales/*.toml file from fsys.
func NewCatalogFS(fsys fs.FS, locale string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("notify: list catalogs: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("notify: load catalog %s: %w", file, err)
		}
	}

	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("notify: parse locale %q: %w", locale, err)
		}
		supported := bundle.LanguageTags()
		_, index, _ := language.NewMatcher(supported).Match(parsed)
		tag = supported[index]
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		tag:       tag,
	}, nil
}

// Language returns the negotiated language.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text localizes id with optional template data.
func (c *Catalog) Text(id string, data map[string]any) string {
	text, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return text
}
