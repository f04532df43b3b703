package inbox

import (
	"bytes"
	"io"
	"strings"

	"profitpilot/utils"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
	"go.uber.org/zap"
)

// Message is an unread booking email pulled from the inbox.
type Message struct {
	From     string
	FromName string
	Subject  string
	Body     string
}

// Fetcher pulls unseen messages from an IMAP mailbox. Each call dials a
// fresh connection, which keeps the poller stateless across intervals.
type Fetcher struct {
	Addr     string
	Username string
	Password string
	Mailbox  string
}

func NewFetcher(addr, username, password string) *Fetcher {
	return &Fetcher{Addr: addr, Username: username, Password: password, Mailbox: "INBOX"}
}

// Fetch returns all unseen messages and marks them seen on the server.
func (f *Fetcher) Fetch() ([]Message, error) {
	c, err := client.DialTLS(f.Addr, nil)
	if err != nil {
		return nil, utils.NewServiceError("failed to connect to IMAP server", err)
	}
	defer c.Logout()

	if err := c.Login(f.Username, f.Password); err != nil {
		return nil, utils.NewServiceError("IMAP login failed", err)
	}
	if _, err := c.Select(f.Mailbox, false); err != nil {
		return nil, utils.NewServiceError("failed to select mailbox", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	ids, err := c.Search(criteria)
	if err != nil {
		return nil, utils.NewServiceError("IMAP search failed", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, messages)
	}()

	var out []Message
	for msg := range messages {
		m := Message{}
		if env := msg.Envelope; env != nil {
			m.Subject = env.Subject
			if len(env.From) > 0 {
				m.From = env.From[0].Address()
				m.FromName = env.From[0].PersonalName
			}
		}
		if r := msg.GetBody(section); r != nil {
			m.Body = readPlainText(r)
		}
		out = append(out, m)
	}
	if err := <-done; err != nil {
		return nil, utils.NewServiceError("IMAP fetch failed", err)
	}
	return out, nil
}

// readPlainText extracts the first text part of a MIME message, falling
// back to the raw payload when parsing fails. The payload is buffered up
// front because a failed MIME parse consumes part of the reader.
func readPlainText(r io.Reader) string {
	raw, err := io.ReadAll(r)
	if err != nil {
		return ""
	}
	mr, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(string(raw))
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			utils.GetLogger().Warn("failed to read message part", zap.Error(err))
			break
		}
		if _, ok := part.Header.(*mail.InlineHeader); ok {
			body, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			text := strings.TrimSpace(string(body))
			if text != "" {
				return text
			}
		}
	}
	return ""
}
