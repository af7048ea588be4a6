package maildoc

import "strings"

// Labels of the addressing rows. They are written in Czech regardless of
// the locale used for the subject and message rows.
const (
	LabelTo  = "Komu"
	LabelCC  = "Kopie"
	LabelBCC = "Skrytá kopie"
)

// Prefixes of the locale-suffixed subject and message rows,
// e.g. "Předmět en" and "Zpráva en".
const (
	subjectLabelPrefix = "Předmět"
	messageLabelPrefix = "Zpráva"
)

// Locale selects which translation of the subject and message is read.
type Locale string

// Supported locales.
const (
	LocaleCS Locale = "cs"
	LocaleEN Locale = "en"
	LocaleSK Locale = "sk"
	LocalePL Locale = "pl"
	LocaleDE Locale = "de"
)

// Locales returns all supported locales.
func Locales() []Locale {
	return []Locale{LocaleCS, LocaleEN, LocaleSK, LocalePL, LocaleDE}
}

// Validate returns an error if the locale is not supported.
func (l Locale) Validate() error {
	for _, known := range Locales() {
		if l == known {
			return nil
		}
	}
	return Errorf(EINVALID, "unsupported locale %q", string(l))
}

// SubjectLabel returns the label of the subject row for the locale.
func (l Locale) SubjectLabel() string {
	return subjectLabelPrefix + " " + string(l)
}

// MessageLabel returns the label of the message row for the locale.
func (l Locale) MessageLabel() string {
	return messageLabelPrefix + " " + string(l)
}

// MailRecord is the e-mail content extracted from one document.
type MailRecord struct {
	To  []string `json:"to"`
	CC  []string `json:"cc"`
	BCC []string `json:"bcc"`

	Subject string `json:"subject"`

	// MessageHTML is the rendered and sanitized message body.
	MessageHTML string `json:"messageHtml"`

	// MessagePlainText is derived from MessageHTML only.
	MessagePlainText string `json:"messagePlainText"`
}

// ParseAddresses splits a comma-separated address list and normalizes each
// entry by trimming whitespace and lower-casing it. Empty entries are dropped.
// Returns nil if the list holds no addresses.
func ParseAddresses(list string) []string {
	var addrs []string
	for _, part := range strings.Split(list, ",") {
		addr := strings.ToLower(strings.TrimSpace(part))
		if addr == "" {
			continue
		}
		addrs = append(addrs, addr)
	}
	return addrs
}
