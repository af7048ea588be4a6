// Package message serializes a MailRecord as an RFC 5322 message with a
// multipart/alternative body.
package message

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/fwojciec/maildoc"
)

// Write writes rec to w as a draft e-mail dated date.
//
// The body carries a text/plain part followed by a text/html part, both
// UTF-8 and quoted-printable encoded. The Bcc header is kept so the output
// can be imported as a draft.
func Write(w io.Writer, rec *maildoc.MailRecord, date time.Time) error {
	if rec == nil {
		return maildoc.Errorf(maildoc.EINVALID, "mail record required")
	}

	var h mail.Header
	h.SetDate(date)
	h.SetSubject(rec.Subject)
	setAddresses(&h, "To", rec.To)
	setAddresses(&h, "Cc", rec.CC)
	setAddresses(&h, "Bcc", rec.BCC)

	mw, err := mail.CreateWriter(w, h)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return fmt.Errorf("create inline body: %w", err)
	}

	if err := writePart(tw, "text/plain", rec.MessagePlainText); err != nil {
		return err
	}
	if err := writePart(tw, "text/html", rec.MessageHTML); err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("close inline body: %w", err)
	}
	return mw.Close()
}

func setAddresses(h *mail.Header, key string, addrs []string) {
	if len(addrs) == 0 {
		return
	}
	list := make([]*mail.Address, 0, len(addrs))
	for _, addr := range addrs {
		list = append(list, &mail.Address{Address: addr})
	}
	h.SetAddressList(key, list)
}

func writePart(tw *mail.InlineWriter, contentType, body string) error {
	var h mail.InlineHeader
	h.SetContentType(contentType, map[string]string{"charset": "utf-8"})
	h.Set("Content-Transfer-Encoding", "quoted-printable")

	pw, err := tw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create %s part: %w", contentType, err)
	}
	if _, err := io.WriteString(pw, body); err != nil {
		pw.Close()
		return fmt.Errorf("write %s part: %w", contentType, err)
	}
	return pw.Close()
}
