package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-message/mail"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Service sends mail through the Gmail API using the configured
// sender account's OAuth2 tokens.
type Service struct {
	clientID     string
	clientSecret string
	accessToken  string
	refreshToken string
	senderName   string
	senderEmail  string
}

func NewService(clientID, clientSecret, accessToken, refreshToken, senderName, senderEmail string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		senderName:   senderName,
		senderEmail:  senderEmail,
	}
}

func (s *Service) gmailService(ctx context.Context) (*gmail.Service, error) {
	token := &oauth2.Token{
		AccessToken:  s.accessToken,
		RefreshToken: s.refreshToken,
		TokenType:    "Bearer",
	}

	// Force a refresh when we hold a refresh token so a stale access
	// token does not fail the send
	if s.refreshToken != "" {
		token.Expiry = time.Now()
	}

	config := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     google.Endpoint,
	}

	client := oauth2.NewClient(ctx, config.TokenSource(ctx, token))

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}

	return srv, nil
}

// Send delivers one plain-text message to a single recipient.
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	srv, err := s.gmailService(ctx)
	if err != nil {
		return err
	}

	raw, err := buildMessage(s.senderName, s.senderEmail, to, subject, body)
	if err != nil {
		return fmt.Errorf("unable to build message: %v", err)
	}

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}

	if _, err := srv.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to send message: %v", err)
	}

	return nil
}

// buildMessage assembles an RFC 5322 message. go-message handles header
// encoding (RFC 2047) for non-ASCII names and subjects.
func buildMessage(fromName, fromEmail, to, subject, body string) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	if fromEmail != "" {
		h.SetAddressList("From", []*mail.Address{{Name: fromName, Address: fromEmail}})
	}
	h.SetAddressList("To", []*mail.Address{{Address: to}})
	h.SetSubject(subject)
	h.SetContentType("text/plain", map[string]string{"charset": "utf-8"})

	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
